// Package registry serves the representative, company, collaborator and
// settings records.
package registry

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/http/respond"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RepresentativeRoutes(r chi.Router) {
	resource[billing.Representative]{
		list:   h.svc.ListRepresentatives,
		get:    h.svc.GetRepresentative,
		create: h.svc.CreateRepresentative,
		update: h.svc.UpdateRepresentative,
		delete: h.svc.DeleteRepresentative,
		setID:  func(v *billing.Representative, id string) { v.ID = id },
	}.routes(r)
}

func (h *Handler) CompanyRoutes(r chi.Router) {
	resource[billing.Company]{
		list:   h.svc.ListCompanies,
		get:    h.svc.GetCompany,
		create: h.svc.CreateCompany,
		update: h.svc.UpdateCompany,
		delete: h.svc.DeleteCompany,
		setID:  func(v *billing.Company, id string) { v.ID = id },
	}.routes(r)
}

func (h *Handler) CollaboratorRoutes(r chi.Router) {
	resource[billing.Collaborator]{
		list:   h.svc.ListCollaborators,
		get:    h.svc.GetCollaborator,
		create: h.svc.CreateCollaborator,
		update: h.svc.UpdateCollaborator,
		delete: h.svc.DeleteCollaborator,
		setID:  func(v *billing.Collaborator, id string) { v.ID = id },
	}.routes(r)
}

func (h *Handler) SettingsRoutes(r chi.Router) {
	r.Get("/", h.getSettings)
	r.With(auth.RequireAdmin).Put("/", h.putSettings)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, settings)
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var settings billing.Settings
	if !respond.Decode(w, r, &settings) {
		return
	}

	if err := h.svc.UpdateSettings(r.Context(), &settings); err != nil {
		respond.Error(w, err)
		return
	}

	h.getSettings(w, r)
}

// resource wires the same five routes for every record type. Reads are
// open to any session; writes need an administrator.
type resource[T any] struct {
	list   func(ctx context.Context) ([]T, error)
	get    func(ctx context.Context, id string) (*T, error)
	create func(ctx context.Context, v T) (*T, error)
	update func(ctx context.Context, v T) error
	delete func(ctx context.Context, id string) error
	setID  func(v *T, id string)
}

func (res resource[T]) routes(r chi.Router) {
	r.Get("/", res.handleList)
	r.Get("/{id}", res.handleGet)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/", res.handleCreate)
		r.Put("/{id}", res.handleUpdate)
		r.Delete("/{id}", res.handleDelete)
	})
}

func (res resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := res.list(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	if items == nil {
		items = []T{}
	}

	respond.JSON(w, http.StatusOK, items)
}

func (res resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	item, err := res.get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

func (res resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var v T
	if !respond.Decode(w, r, &v) {
		return
	}

	created, err := res.create(r.Context(), v)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (res resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var v T
	if !respond.Decode(w, r, &v) {
		return
	}

	id := chi.URLParam(r, "id")
	res.setID(&v, id)

	if err := res.update(r.Context(), v); err != nil {
		respond.Error(w, err)
		return
	}

	stored, err := res.get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, stored)
}

func (res resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := res.delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
