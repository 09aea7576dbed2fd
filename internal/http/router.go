package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"roomwatch/internal/domain"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	allowCORS(requestLogger(r.logger, r.mux)).ServeHTTP(w, req)
}

// RegisterHealthRoutes: liveness + info
func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.Handle("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Health(w, req)
	})
	r.Handle("/api/status", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Status(w, req)
	})
}

func (r *Router) RegisterAuthRoutes(h *AuthHandler) {
	r.Handle("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Login(w, req)
	})
}

func (r *Router) RegisterRoomRoutes(h *RoomHandler) {
	r.Handle("/api/rooms", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.List(w, req)
		case http.MethodPost:
			h.Create(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// /api/rooms/{id}
	r.Handle("/api/rooms/", func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, "/api/rooms/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if req.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Delete(w, req, id)
	})
}

func (r *Router) RegisterAreaRoutes(h *AreaHandler) {
	r.Handle("/api/areas", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			h.List(w, req)
		case http.MethodPost:
			h.Create(w, req)
		case http.MethodPut:
			h.Update(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterSensorRoutes: reads need a valid user, mutations need admin.
func (r *Router) RegisterSensorRoutes(h *SensorHandler, m *MapHandler, gate *AuthGate) {
	r.Handle("/api/sensors", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			gate.RequireUser(h.List)(w, req)
		case http.MethodPost:
			gate.RequireAdmin(h.Create)(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	r.Handle("/api/sensors/export", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		gate.RequireAdmin(h.Export)(w, req)
	})

	// /api/sensors/{id}
	r.Handle("/api/sensors/", func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, "/api/sensors/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch req.Method {
		case http.MethodPut:
			gate.RequireAdmin(func(w http.ResponseWriter, req *http.Request, u *domain.User) {
				h.Update(w, req, u, id)
			})(w, req)
		case http.MethodDelete:
			gate.RequireAdmin(func(w http.ResponseWriter, req *http.Request, u *domain.User) {
				h.Delete(w, req, u, id)
			})(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	r.Handle("/api/map/positions", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		gate.RequireUser(m.Positions)(w, req)
	})
}
