package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	Representatives(ctx context.Context) ([]Representative, error)
	SaveRepresentatives(ctx context.Context, reps []Representative) error

	Companies(ctx context.Context) ([]Company, error)
	SaveCompanies(ctx context.Context, companies []Company) error

	Collaborators(ctx context.Context) ([]Collaborator, error)
	SaveCollaborators(ctx context.Context, cols []Collaborator) error

	Invoices(ctx context.Context) ([]Invoice, error)
	SaveInvoices(ctx context.Context, invoices []Invoice) error

	// Settings returns nil when no settings record has been stored yet.
	Settings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error
}

type Service struct {
	repo     Repository
	strict   bool
	defaults *Settings
	now      func() time.Time
}

type Option func(*Service)

// WithStrictStatus only allows invoices to move forward through Statuses.
func WithStrictStatus(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// WithDefaultSettings replaces the built-in settings returned while none
// are stored.
func WithDefaultSettings(settings *Settings) Option {
	return func(s *Service) {
		if settings != nil {
			s.defaults = settings
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		defaults: DefaultSettings(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) today() Date {
	t := s.now()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// newID mints an id when none is given and rejects one already in use.
func newID[T any](items []T, id string, idOf func(T) string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}

	if findByID(items, id, idOf) >= 0 {
		return "", ErrConflict
	}

	return id, nil
}

func findByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}

	return -1
}

func representativeID(r Representative) string { return r.ID }
func companyID(c Company) string               { return c.ID }
func collaboratorID(c Collaborator) string     { return c.ID }
func invoiceID(i Invoice) string               { return i.ID }

// Representatives

func (s *Service) ListRepresentatives(ctx context.Context) ([]Representative, error) {
	return s.repo.Representatives(ctx)
}

func (s *Service) GetRepresentative(ctx context.Context, id string) (*Representative, error) {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByID(reps, id, representativeID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return &reps[idx], nil
}

func (s *Service) CreateRepresentative(ctx context.Context, rep Representative) (*Representative, error) {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return nil, err
	}

	if rep.ID, err = newID(reps, rep.ID, representativeID); err != nil {
		return nil, err
	}

	if rep.Status == "" {
		rep.Status = RecordActive
	}

	if rep.RegistrationDate.IsZero() {
		rep.RegistrationDate = s.today()
	}

	if err := s.repo.SaveRepresentatives(ctx, append(reps, rep)); err != nil {
		return nil, fmt.Errorf("saving representatives: %w", err)
	}

	return &rep, nil
}

func (s *Service) UpdateRepresentative(ctx context.Context, rep Representative) error {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return err
	}

	idx := findByID(reps, rep.ID, representativeID)
	if idx < 0 {
		return ErrNotFound
	}

	reps[idx] = rep

	return s.repo.SaveRepresentatives(ctx, reps)
}

func (s *Service) DeleteRepresentative(ctx context.Context, id string) error {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return err
	}

	idx := findByID(reps, id, representativeID)
	if idx < 0 {
		return ErrNotFound
	}

	return s.repo.SaveRepresentatives(ctx, append(reps[:idx], reps[idx+1:]...))
}

// Companies

func (s *Service) ListCompanies(ctx context.Context) ([]Company, error) {
	return s.repo.Companies(ctx)
}

func (s *Service) GetCompany(ctx context.Context, id string) (*Company, error) {
	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByID(companies, id, companyID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return &companies[idx], nil
}

func (s *Service) CreateCompany(ctx context.Context, c Company) (*Company, error) {
	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return nil, err
	}

	if c.ID, err = newID(companies, c.ID, companyID); err != nil {
		return nil, err
	}

	if c.Status == "" {
		c.Status = RecordActive
	}

	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = s.today()
	}

	if err := s.fillCompanyRepresentative(ctx, &c); err != nil {
		return nil, err
	}

	if err := s.repo.SaveCompanies(ctx, append(companies, c)); err != nil {
		return nil, fmt.Errorf("saving companies: %w", err)
	}

	return &c, nil
}

func (s *Service) UpdateCompany(ctx context.Context, c Company) error {
	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return err
	}

	idx := findByID(companies, c.ID, companyID)
	if idx < 0 {
		return ErrNotFound
	}

	if err := s.fillCompanyRepresentative(ctx, &c); err != nil {
		return err
	}

	companies[idx] = c

	return s.repo.SaveCompanies(ctx, companies)
}

func (s *Service) DeleteCompany(ctx context.Context, id string) error {
	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return err
	}

	idx := findByID(companies, id, companyID)
	if idx < 0 {
		return ErrNotFound
	}

	return s.repo.SaveCompanies(ctx, append(companies[:idx], companies[idx+1:]...))
}

// fillCompanyRepresentative denormalizes the owning representative's name.
func (s *Service) fillCompanyRepresentative(ctx context.Context, c *Company) error {
	if c.RepresentativeID == "" || c.RepresentativeName != "" {
		return nil
	}

	name, err := s.representativeName(ctx, c.RepresentativeID)
	if err != nil {
		return err
	}

	c.RepresentativeName = name

	return nil
}

func (s *Service) representativeName(ctx context.Context, id string) (string, error) {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return "", err
	}

	if idx := findByID(reps, id, representativeID); idx >= 0 {
		return reps[idx].Name, nil
	}

	return "", nil
}

// Collaborators

func (s *Service) ListCollaborators(ctx context.Context) ([]Collaborator, error) {
	return s.repo.Collaborators(ctx)
}

func (s *Service) GetCollaborator(ctx context.Context, id string) (*Collaborator, error) {
	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByID(cols, id, collaboratorID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return &cols[idx], nil
}

func (s *Service) CreateCollaborator(ctx context.Context, c Collaborator) (*Collaborator, error) {
	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return nil, err
	}

	if c.ID, err = newID(cols, c.ID, collaboratorID); err != nil {
		return nil, err
	}

	if c.Type == "" {
		c.Type = CollaboratorStaff
	}

	if c.Status == "" {
		c.Status = RecordActive
	}

	if c.WorkType != WorkHybrid {
		c.HybridSchedule = ""
	}

	if err := s.repo.SaveCollaborators(ctx, append(cols, c)); err != nil {
		return nil, fmt.Errorf("saving collaborators: %w", err)
	}

	return &c, nil
}

func (s *Service) UpdateCollaborator(ctx context.Context, c Collaborator) error {
	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return err
	}

	idx := findByID(cols, c.ID, collaboratorID)
	if idx < 0 {
		return ErrNotFound
	}

	if c.WorkType != WorkHybrid {
		c.HybridSchedule = ""
	}

	cols[idx] = c

	return s.repo.SaveCollaborators(ctx, cols)
}

func (s *Service) DeleteCollaborator(ctx context.Context, id string) error {
	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return err
	}

	idx := findByID(cols, id, collaboratorID)
	if idx < 0 {
		return ErrNotFound
	}

	return s.repo.SaveCollaborators(ctx, append(cols[:idx], cols[idx+1:]...))
}

// Invoices

type ListFilter struct {
	// Search is matched case-insensitively against number, client,
	// representative name and description.
	Search           string
	Status           *Status
	RepresentativeID string
	// Month is "01".."12"; empty means every month.
	Month string
}

func (f ListFilter) matches(inv Invoice) bool {
	if f.Status != nil && inv.Status != *f.Status {
		return false
	}

	if f.RepresentativeID != "" && inv.RepresentativeID != f.RepresentativeID {
		return false
	}

	if f.Month != "" && (inv.IssueDate.IsZero() || inv.IssueDate.MonthKey() != f.Month) {
		return false
	}

	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)

	for _, field := range []string{inv.Number, inv.ClientName, inv.RepresentativeName, inv.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// FilterInvoices keeps the invoices matching filter, in their stored order.
func FilterInvoices(invoices []Invoice, filter ListFilter) []Invoice {
	out := make([]Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if filter.matches(inv) {
			out = append(out, inv)
		}
	}

	return out
}

func (s *Service) ListInvoices(ctx context.Context, filter ListFilter) ([]Invoice, error) {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	return FilterInvoices(invoices, filter), nil
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByID(invoices, id, invoiceID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	return &invoices[idx], nil
}

func (s *Service) CreateInvoice(ctx context.Context, inv Invoice) (*Invoice, error) {
	if err := s.prepareInvoice(ctx, &inv); err != nil {
		return nil, err
	}

	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	if inv.ID, err = newID(invoices, inv.ID, invoiceID); err != nil {
		return nil, err
	}

	if inv.Status == "" {
		inv.Status = StatusNotIssued
	}

	if err := s.repo.SaveInvoices(ctx, append(invoices, inv)); err != nil {
		return nil, fmt.Errorf("saving invoices: %w", err)
	}

	return &inv, nil
}

// UpdateInvoice replaces a stored invoice. Status changes made here are
// not checked against strict mode; use UpdateStatus for that.
func (s *Service) UpdateInvoice(ctx context.Context, inv Invoice) error {
	if err := s.prepareInvoice(ctx, &inv); err != nil {
		return err
	}

	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return err
	}

	idx := findByID(invoices, inv.ID, invoiceID)
	if idx < 0 {
		return ErrNotFound
	}

	invoices[idx] = inv

	return s.repo.SaveInvoices(ctx, invoices)
}

func (s *Service) prepareInvoice(ctx context.Context, inv *Invoice) error {
	if inv.GrossValue < 0 {
		return ErrNegativeValue
	}

	if inv.Status != "" && !inv.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, inv.Status)
	}

	if inv.IssueDate.IsZero() {
		return ErrMissingIssueDate
	}

	if inv.NetValue == 0 {
		inv.NetValue = inv.GrossValue - inv.Taxes.Total()
	}

	if inv.RepresentativeID != "" && inv.RepresentativeName == "" {
		name, err := s.representativeName(ctx, inv.RepresentativeID)
		if err != nil {
			return err
		}

		inv.RepresentativeName = name
	}

	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return err
	}

	idx := findByID(invoices, id, invoiceID)
	if idx < 0 {
		return ErrNotFound
	}

	if !CanTransition(invoices[idx].Status, status, s.strict) {
		return fmt.Errorf("%w: %s to %s", ErrStatusTransition, invoices[idx].Status, status)
	}

	invoices[idx].Status = status

	return s.repo.SaveInvoices(ctx, invoices)
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return err
	}

	idx := findByID(invoices, id, invoiceID)
	if idx < 0 {
		return ErrNotFound
	}

	return s.repo.SaveInvoices(ctx, append(invoices[:idx], invoices[idx+1:]...))
}

// CountByStatus tallies invoices per status. Every known status is present.
func CountByStatus(invoices []Invoice) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, st := range Statuses {
		counts[st] = 0
	}

	for _, inv := range invoices {
		counts[inv.Status]++
	}

	return counts
}

// Settings

// Settings returns the stored settings, or the defaults when none exist.
func (s *Service) Settings(ctx context.Context) (*Settings, error) {
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		return s.defaults, nil
	}

	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings *Settings) error {
	return s.repo.SaveSettings(ctx, settings.withDefaults(s.defaults))
}
