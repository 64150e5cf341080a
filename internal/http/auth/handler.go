package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/http/respond"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers login, which is public, and the session routes, which
// need the token login returned.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.svc))
		r.Get("/session", h.session)
		r.Post("/logout", h.logout)
	})
}

type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token   string        `json:"token"`
	Session *auth.Session `json:"session"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		respond.Error(w, err)
		return
	}

	session, token, err := h.svc.Login(r.Context(), req.Email, role)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{Token: token, Session: session})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respond.Error(w, auth.ErrNoSession)
		return
	}

	respond.JSON(w, http.StatusOK, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
