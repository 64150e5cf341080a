package dashboard

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// Repository is the read side of the record store the dashboard needs.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	Representatives(ctx context.Context) ([]billing.Representative, error)
	Companies(ctx context.Context) ([]billing.Company, error)
	Collaborators(ctx context.Context) ([]billing.Collaborator, error)
	Invoices(ctx context.Context) ([]billing.Invoice, error)
}

// Service loads collections and narrows them to the caller's scope before
// any aggregate is computed.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) invoices(ctx context.Context, scope billing.Scope) ([]billing.Invoice, error) {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading invoices: %w", err)
	}

	return scope.Apply(invoices), nil
}

func (s *Service) Summary(ctx context.Context, scope billing.Scope) (*Summary, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading collaborators: %w", err)
	}

	summary := Summarize(invoices, len(cols))

	return &summary, nil
}

// Monthly is the twelve-month series of the scope. A name-only scope
// buckets by the denormalized representative name, an id-only scope by id.
func (s *Service) Monthly(ctx context.Context, scope billing.Scope) ([]MonthlyBucket, error) {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading invoices: %w", err)
	}

	switch {
	case scope.IsAdmin():
		return ByMonth(invoices), nil
	case scope.NameOnly:
		return ByMonthForRepresentativeName(invoices, scope.RepresentativeName), nil
	case scope.RepresentativeID != "" && scope.RepresentativeName == "":
		return ByMonthForRepresentative(invoices, scope.RepresentativeID), nil
	}

	return ByMonth(scope.Apply(invoices)), nil
}

// MonthDetails groups one month ("01".."12") or AllMonths by client.
func (s *Service) MonthDetails(ctx context.Context, scope billing.Scope, month string) ([]ClientGroup, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	return MonthDetails(invoices, month), nil
}

func (s *Service) ClientTrends(ctx context.Context, scope billing.Scope) ([]ClientTrend, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	return ClientTrends(invoices), nil
}

// Representatives returns per-representative stats. A representative scope
// sees only their own entry.
func (s *Service) Representatives(ctx context.Context, scope billing.Scope) ([]RepresentativeStats, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading representatives: %w", err)
	}

	only := scope.RepresentativeID
	if !scope.IsAdmin() && only == "" {
		// Name-only scopes must still never see other representatives.
		for _, r := range reps {
			if scope.RepresentativeName != "" && r.Name == scope.RepresentativeName {
				only = r.ID
				break
			}
		}

		if only == "" {
			return []RepresentativeStats{}, nil
		}
	}

	return ByRepresentative(reps, invoices, only), nil
}

func (s *Service) Companies(ctx context.Context, scope billing.Scope) ([]CompanyStats, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	return Companies(invoices), nil
}

// Company returns the detail view for one client. It reports
// billing.ErrNotFound when the scope has no invoices for that client.
func (s *Service) Company(ctx context.Context, scope billing.Scope, client string) (*CompanyDetail, error) {
	invoices, err := s.invoices(ctx, scope)
	if err != nil {
		return nil, err
	}

	own := filter(invoices, func(inv billing.Invoice) bool { return inv.ClientName == client })
	if len(own) == 0 {
		return nil, billing.ErrNotFound
	}

	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading companies: %w", err)
	}

	detail := &CompanyDetail{
		CompanyStats: Companies(own)[0],
		Months:       CompanyTrend(invoices, client),
		Invoices:     own,
	}

	if record, ok := FindCompanyRecord(companies, client); ok {
		detail.Record = record
	}

	return detail, nil
}
