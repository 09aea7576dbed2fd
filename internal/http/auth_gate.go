package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/service"
)

// AuthGate re-evaluates the caller-supplied credential pair on every request.
// Credentials travel as plain `username`/`password` headers; there is no
// session or token to cache, and the gate fails closed.
type AuthGate struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthGate(auth service.AuthService, logger *zap.Logger) *AuthGate {
	return &AuthGate{auth: auth, logger: logger}
}

type authedHandler func(w http.ResponseWriter, r *http.Request, user *domain.User)

// RequireUser admits any valid credential pair.
func (g *AuthGate) RequireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := g.resolve(w, r)
		if !ok {
			return
		}
		next(w, r, user)
	}
}

// RequireAdmin additionally checks the admin role; 403 for plain users.
func (g *AuthGate) RequireAdmin(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := g.resolve(w, r)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			g.logger.Warn("Admin endpoint denied",
				zap.String("username", user.Username),
				zap.String("path", r.URL.Path),
			)
			writeJSON(w, http.StatusForbidden, Fail("Admin access required"))
			return
		}
		next(w, r, user)
	}
}

func (g *AuthGate) resolve(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	username := r.Header.Get("username")
	password := r.Header.Get("password")

	user, err := g.auth.Authenticate(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, Fail("Authentication required"))
		return nil, false
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return nil, false
	}
	return user, true
}
