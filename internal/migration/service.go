package migration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/encoding"
)

// Repository is raw keyed access to the record store.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=migration
type Repository interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

var (
	ErrAlreadyMigrated = errors.New("migration already completed")
	ErrInvalidDump     = errors.New("invalid legacy dump")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Completed reports whether the migration flag has been set.
func (s *Service) Completed(ctx context.Context) (bool, error) {
	var done bool

	if _, err := s.repo.Load(ctx, billing.KeyMigrationCompleted, &done); err != nil {
		return false, fmt.Errorf("reading migration flag: %w", err)
	}

	return done, nil
}

// RunOnce migrates unless the completion flag is already set. It reports
// whether a migration actually ran.
func (s *Service) RunOnce(ctx context.Context) (bool, error) {
	done, err := s.Completed(ctx)
	if err != nil {
		return false, err
	}

	if done {
		return false, nil
	}

	if _, err := s.Migrate(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// Migrate reads the legacy collections, writes the transformed ones and
// sets the completion flag. It does not check the flag; use RunOnce.
func (s *Service) Migrate(ctx context.Context) (*Result, error) {
	legacy, err := s.loadLegacy(ctx)
	if err != nil {
		return nil, err
	}

	res := Transform(legacy)

	writes := []struct {
		key string
		v   any
	}{
		{billing.KeyRepresentatives, res.Representatives},
		{billing.KeyCompanies, res.Companies},
		{billing.KeyCollaborators, res.Collaborators},
		{billing.KeyInvoices, res.Invoices},
		{billing.KeySettings, res.Settings},
		{billing.KeyCompanies, res.Tomadores},
		{billing.KeyMigrationCompleted, true},
	}

	for _, w := range writes {
		if err := s.repo.Save(ctx, w.key, w.v); err != nil {
			return nil, fmt.Errorf("writing migrated %s: %w", w.key, err)
		}
	}

	slog.Info("migration completed",
		"representatives", len(res.Representatives),
		"companies", len(res.Companies),
		"collaborators", len(res.Collaborators),
		"invoices", len(res.Invoices),
	)

	return &res, nil
}

func (s *Service) loadLegacy(ctx context.Context) (Legacy, error) {
	var cols, invoices json.RawMessage

	if _, err := s.repo.Load(ctx, LegacyKeyCollaborators, &cols); err != nil {
		return Legacy{}, fmt.Errorf("reading legacy collaborators: %w", err)
	}

	if _, err := s.repo.Load(ctx, LegacyKeyInvoices, &invoices); err != nil {
		return Legacy{}, fmt.Errorf("reading legacy invoices: %w", err)
	}

	return Legacy{
		Collaborators: decodeList[LegacyCollaborator](unwrapStored(cols)),
		Invoices:      decodeList[LegacyInvoice](unwrapStored(invoices)),
	}, nil
}

// ImportSummary describes an uploaded legacy dump.
type ImportSummary struct {
	Charset       encoding.Charset `json:"charset"`
	Collaborators int              `json:"collaborators"`
	Invoices      int              `json:"invoices"`
}

// ImportLegacy stores the legacy collections found in an exported browser
// storage dump so that a later migration picks them up. Values may be raw
// arrays or JSON-encoded strings. Once the migration has completed a dump
// could never be migrated, so it is refused with ErrAlreadyMigrated.
func (s *Service) ImportLegacy(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	done, err := s.Completed(ctx)
	if err != nil {
		return nil, err
	}

	if done {
		return nil, ErrAlreadyMigrated
	}

	data, cs, err := encoding.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading: %v", ErrInvalidDump, err)
	}

	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("%w: parsing: %v", ErrInvalidDump, err)
	}

	summary := &ImportSummary{Charset: cs}

	if raw, ok := dump[LegacyKeyCollaborators]; ok {
		raw = validOrEmpty(unwrapStored(raw))
		summary.Collaborators = len(decodeList[LegacyCollaborator](raw))

		if err := s.repo.Save(ctx, LegacyKeyCollaborators, raw); err != nil {
			return nil, fmt.Errorf("storing legacy collaborators: %w", err)
		}
	}

	if raw, ok := dump[LegacyKeyInvoices]; ok {
		raw = validOrEmpty(unwrapStored(raw))
		summary.Invoices = len(decodeList[LegacyInvoice](raw))

		if err := s.repo.Save(ctx, LegacyKeyInvoices, raw); err != nil {
			return nil, fmt.Errorf("storing legacy invoices: %w", err)
		}
	}

	return summary, nil
}

func validOrEmpty(raw json.RawMessage) json.RawMessage {
	if !json.Valid(raw) {
		return json.RawMessage("[]")
	}

	return raw
}
