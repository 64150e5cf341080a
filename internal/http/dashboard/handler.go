package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/http/respond"
	"github.com/MrJamesThe3rd/faturamento/internal/report"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/monthly", h.monthly)
	r.Get("/clients", h.clients)
	r.Get("/trends", h.trends)
	r.Get("/representatives", h.representatives)
	r.Get("/companies", h.companies)
	r.Get("/companies/{name}", h.company)
	r.Get("/report.xlsx", h.report)
}

// scope is the session scope. Administrators may narrow it to one
// representative with ?representative_id=, or by exact name with
// ?representative= for records that predate ids.
func scope(w http.ResponseWriter, r *http.Request) (billing.Scope, bool) {
	s, ok := respond.Scope(w, r)
	if !ok || !s.IsAdmin() {
		return s, ok
	}

	q := r.URL.Query()

	if id := q.Get("representative_id"); id != "" {
		return billing.Scope{RepresentativeID: id}, true
	}

	if name := q.Get("representative"); name != "" {
		return billing.ByName(name), true
	}

	return s, true
}

// serve runs one scoped query and writes its result as JSON.
func serve[T any](w http.ResponseWriter, r *http.Request, query func(billing.Scope) (T, error)) {
	s, ok := scope(w, r)
	if !ok {
		return
	}

	v, err := query(s)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, v)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(s billing.Scope) (*dashboard.Summary, error) {
		return h.svc.Summary(r.Context(), s)
	})
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(s billing.Scope) ([]dashboard.MonthlyBucket, error) {
		return h.svc.Monthly(r.Context(), s)
	})
}

// clients groups by client for ?month=01..12, or every month when the
// parameter is absent or "all".
func (h *Handler) clients(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = dashboard.AllMonths
	}

	serve(w, r, func(s billing.Scope) ([]dashboard.ClientGroup, error) {
		return h.svc.MonthDetails(r.Context(), s, month)
	})
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(s billing.Scope) ([]dashboard.ClientTrend, error) {
		return h.svc.ClientTrends(r.Context(), s)
	})
}

func (h *Handler) representatives(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(s billing.Scope) ([]dashboard.RepresentativeStats, error) {
		return h.svc.Representatives(r.Context(), s)
	})
}

func (h *Handler) companies(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(s billing.Scope) ([]dashboard.CompanyStats, error) {
		return h.svc.Companies(r.Context(), s)
	})
}

func (h *Handler) company(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	serve(w, r, func(s billing.Scope) (*dashboard.CompanyDetail, error) {
		return h.svc.Company(r.Context(), s, name)
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	s, ok := scope(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	monthly, err := h.svc.Monthly(ctx, s)
	if err != nil {
		respond.Error(w, err)
		return
	}

	clients, err := h.svc.MonthDetails(ctx, s, dashboard.AllMonths)
	if err != nil {
		respond.Error(w, err)
		return
	}

	reps, err := h.svc.Representatives(ctx, s)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="faturamento.xlsx"`)

	if err := report.Write(w, monthly, clients, reps); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}
