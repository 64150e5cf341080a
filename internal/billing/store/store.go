package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// Store keeps every collection as one JSON document per key. Reads return
// the whole collection and writes replace it; the last write wins.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load decodes the document stored under key into dst. It reports false,
// leaving dst untouched, when the key has never been written.
func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	query := `SELECT value FROM collections WHERE key = $1`

	var raw []byte

	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("loading %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}

	return true, nil
}

func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	query := `
		INSERT INTO collections (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}

	return nil
}

// loadList returns an empty slice for a missing collection.
func loadList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var items []T
	if _, err := s.Load(ctx, key, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (s *Store) Representatives(ctx context.Context) ([]billing.Representative, error) {
	return loadList[billing.Representative](ctx, s, billing.KeyRepresentatives)
}

func (s *Store) SaveRepresentatives(ctx context.Context, reps []billing.Representative) error {
	return s.Save(ctx, billing.KeyRepresentatives, reps)
}

func (s *Store) Companies(ctx context.Context) ([]billing.Company, error) {
	return loadList[billing.Company](ctx, s, billing.KeyCompanies)
}

func (s *Store) SaveCompanies(ctx context.Context, companies []billing.Company) error {
	return s.Save(ctx, billing.KeyCompanies, companies)
}

func (s *Store) Collaborators(ctx context.Context) ([]billing.Collaborator, error) {
	return loadList[billing.Collaborator](ctx, s, billing.KeyCollaborators)
}

func (s *Store) SaveCollaborators(ctx context.Context, cols []billing.Collaborator) error {
	return s.Save(ctx, billing.KeyCollaborators, cols)
}

func (s *Store) Invoices(ctx context.Context) ([]billing.Invoice, error) {
	return loadList[billing.Invoice](ctx, s, billing.KeyInvoices)
}

func (s *Store) SaveInvoices(ctx context.Context, invoices []billing.Invoice) error {
	return s.Save(ctx, billing.KeyInvoices, invoices)
}

func (s *Store) Settings(ctx context.Context) (*billing.Settings, error) {
	var settings billing.Settings

	found, err := s.Load(ctx, billing.KeySettings, &settings)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *billing.Settings) error {
	return s.Save(ctx, billing.KeySettings, settings)
}
