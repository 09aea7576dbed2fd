package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/service"
)

type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse keeps the `user` key the client expects at the top level.
type loginResponse struct {
	Success bool            `json:"success"`
	User    domain.UserView `json:"user"`
}

// Login resolves the credential pair and returns the user's public view.
// Unknown pairs get a 401 and never a user object.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, Fail("Invalid username or password"))
		return
	}
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", user.RoleName()),
	)
	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: user.View()})
}
