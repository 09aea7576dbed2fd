package httpapi

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
)

func TestAreaList(t *testing.T) {
	env := newTestEnv(t)
	env.areas.areas = []domain.Area{
		{ID: 3, Name: "North Wing", Description: sql.NullString{String: "Labs", Valid: true}},
	}

	rec := env.do(t, http.MethodGet, "/api/areas", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"North Wing"`)
	assert.Contains(t, rec.Body.String(), `"description":"Labs"`)
}

func TestAreaCreate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/areas", "", map[string]any{
		"name": "South Wing", "restriction": "staff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"areaId":7`)

	require.NotNil(t, env.areas.created)
	assert.Equal(t, "South Wing", env.areas.created.Name)
	assert.Equal(t, "staff", env.areas.created.Restriction.String)
}

func TestAreaCreate_MissingName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/areas", "", map[string]any{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Area name is required"}, decodeEnvelope(t, rec).Errors)
}

func TestAreaUpdate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/areas", "", map[string]any{
		"id": 3, "name": "North Wing (renovated)",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.areas.updated)
	assert.Equal(t, 3, env.areas.updated.ID)
}

func TestAreaUpdate_MissingID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/areas", "", map[string]any{"name": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, env.areas.updated)
}

func TestAreaUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.areas.updateErr = repository.ErrAreaNotFound

	rec := env.do(t, http.MethodPut, "/api/areas", "", map[string]any{"id": 99, "name": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Area not found", decodeEnvelope(t, rec).Message)
}
