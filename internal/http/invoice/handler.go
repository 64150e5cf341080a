package invoice

import (
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/document"
	"github.com/MrJamesThe3rd/faturamento/internal/http/respond"
)

type Handler struct {
	svc *billing.Service
	now func() time.Time
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/status-counts", h.statusCounts)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/export", h.export)
	r.Get("/{id}/print", h.print)
	r.Get("/{id}/print.pdf", h.printPDF)
	r.Get("/{id}/share", h.share)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	filter := billing.ListFilter{
		Search:           q.Get("search"),
		RepresentativeID: q.Get("representative_id"),
		Month:            q.Get("month"),
	}

	if s := q.Get("status"); s != "" {
		status, err := billing.ParseStatus(s)
		if err != nil {
			respond.Error(w, err)
			return
		}

		filter.Status = &status
	}

	invoices, err := h.svc.ListInvoices(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, scope.Apply(invoices))
}

func (h *Handler) statusCounts(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	invoices, err := h.svc.ListInvoices(r.Context(), billing.ListFilter{})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, billing.CountByStatus(scope.Apply(invoices)))
}

// load fetches the invoice named in the URL. Invoices outside the caller's
// scope are reported as missing.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*billing.Invoice, bool) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return nil, false
	}

	inv, err := h.svc.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err == nil && !scope.Allows(*inv) {
		err = billing.ErrNotFound
	}

	if err != nil {
		respond.Error(w, err)
		return nil, false
	}

	return inv, true
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	respond.JSON(w, http.StatusOK, inv)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, ok := respond.Scope(w, r)
	if !ok {
		return
	}

	var inv billing.Invoice
	if !respond.Decode(w, r, &inv) {
		return
	}

	if !scope.IsAdmin() {
		inv.RepresentativeID = scope.RepresentativeID
		inv.RepresentativeName = scope.RepresentativeName
	}

	created, err := h.svc.CreateInvoice(r.Context(), inv)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.load(w, r)
	if !ok {
		return
	}

	var inv billing.Invoice
	if !respond.Decode(w, r, &inv) {
		return
	}

	inv.ID = existing.ID

	scope, _ := respond.Scope(w, r)
	if !scope.IsAdmin() {
		inv.RepresentativeID = existing.RepresentativeID
		inv.RepresentativeName = existing.RepresentativeName
	}

	if err := h.svc.UpdateInvoice(r.Context(), inv); err != nil {
		respond.Error(w, err)
		return
	}

	stored, err := h.svc.GetInvoice(r.Context(), inv.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, stored)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	status, err := billing.ParseStatus(req.Status)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), inv.ID, status); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteInvoice(r.Context(), inv.ID); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	body, err := document.ExportJSON(*inv, h.now())
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": document.ExportFilename(inv.Number),
	}))

	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *Handler) print(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := document.PrintHTML(w, *inv); err != nil {
		slog.Error("failed to render invoice", "error", err)
	}
}

func (h *Handler) printPDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")

	if err := document.PrintPDF(w, *inv); err != nil {
		slog.Error("failed to render invoice pdf", "error", err)
	}
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}

	respond.JSON(w, http.StatusOK, document.Links(*inv))
}
