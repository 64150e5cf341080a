package migration

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/faturamento/internal/http/respond"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

const maxDumpSize = 10 << 20

type Handler struct {
	svc *migration.Service
}

func NewHandler(svc *migration.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/status", h.status)
	r.Post("/run", h.run)
	r.Post("/legacy", h.importLegacy)
}

type statusResponse struct {
	Completed bool `json:"completed"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	done, err := h.svc.Completed(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Completed: done})
}

type runResponse struct {
	Ran bool `json:"ran"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	ran, err := h.svc.RunOnce(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, runResponse{Ran: ran})
}

// importLegacy stores a legacy dump sent either as the raw body or as the
// "file" field of a multipart form.
func (h *Handler) importLegacy(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = http.MaxBytesReader(w, r.Body, maxDumpSize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxDumpSize); err != nil {
			http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		body = file
	}

	summary, err := h.svc.ImportLegacy(r.Context(), body)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, summary)
}
