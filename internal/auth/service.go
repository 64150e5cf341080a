package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// Repository gives access to the representatives and the session key.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	Representatives(ctx context.Context) ([]billing.Representative, error)
	Collaborators(ctx context.Context) ([]billing.Collaborator, error)
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	repo   Repository
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo Repository, secret string, ttl time.Duration) *Service {
	return &Service{repo: repo, secret: secret, ttl: ttl, now: time.Now}
}

// Login identifies the caller. Administrators are accepted by email alone;
// representatives must match a registered representative by email, case
// insensitively. The session is stored and a signed token returned.
func (s *Service) Login(ctx context.Context, email string, role Role) (*Session, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, "", ErrMissingEmail
	}

	session := Session{
		Role:       role,
		Email:      email,
		Name:       displayName(email),
		LoggedInAt: s.now().UTC().Truncate(time.Second),
	}

	switch role {
	case RoleAdmin:
	case RoleRepresentative:
		rep, err := s.findRepresentative(ctx, email)
		if err != nil {
			return nil, "", err
		}

		session.Name = rep.Name
		session.RepresentativeID = rep.ID
	default:
		return nil, "", ErrInvalidRole
	}

	if err := s.repo.Save(ctx, billing.KeySession, session); err != nil {
		return nil, "", fmt.Errorf("saving session: %w", err)
	}

	token, err := GenerateJWT(session, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}

	return &session, token, nil
}

// findRepresentative looks in the representatives collection first and
// then among collaborators typed as representatives.
func (s *Service) findRepresentative(ctx context.Context, email string) (*billing.Representative, error) {
	reps, err := s.repo.Representatives(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading representatives: %w", err)
	}

	cols, err := s.repo.Collaborators(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading collaborators: %w", err)
	}

	for _, r := range append(reps, billing.RepresentativesFromCollaborators(cols)...) {
		if r.Email != "" && strings.EqualFold(r.Email, email) {
			return &r, nil
		}
	}

	return nil, ErrUnknownRepresentative
}

// Current returns the stored session.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	var session Session

	found, err := s.repo.Load(ctx, billing.KeySession, &session)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	if !found {
		return nil, ErrNoSession
	}

	return &session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, billing.KeySession); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	return nil
}

// Verify validates a token issued by Login.
func (s *Service) Verify(token string) (*Session, error) {
	return ValidateJWT(token, s.secret)
}
