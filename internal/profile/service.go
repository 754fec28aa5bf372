// Package profile manages the application-level identity records layered over
// accounts: one profile per authenticated identity, created lazily with
// defaults the first time the identity is seen.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

// DefaultName is the placeholder display name for profiles created on first
// login, matching what the signup form would otherwise collect.
const DefaultName = "Usuário"

type Service struct {
	repo   repository.ProfileRepo
	logger *slog.Logger
}

func NewService(repo repository.ProfileRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// EnsureProfile returns the profile for id, creating it with defaults
// (DefaultName, role user) when none exists yet. A lookup failure other than
// not-found is returned as-is and never triggers the insert, so store outages
// are not masked as missing profiles. A duplicate-key failure on the insert
// means another session created the profile concurrently; it is resolved by
// re-reading.
func (s *Service) EnsureProfile(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", id, err)
	}
	if p != nil {
		return p, nil
	}

	p = &models.Profile{
		ID:      id,
		Name:    DefaultName,
		Role:    models.RoleUser,
		Created: time.Now().UTC().UnixMilli(),
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		if !errors.Is(err, models.ErrDuplicate) {
			return nil, fmt.Errorf("create profile %s: %w", id, err)
		}
		// Lost the race against another login for the same identity.
		s.logger.Info("profile already created concurrently", slog.String("id", id))
		p, err = s.repo.GetProfile(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reload profile %s: %w", id, err)
		}
		if p == nil {
			return nil, fmt.Errorf("reload profile %s: %w", id, models.ErrNotFound)
		}
		return p, nil
	}

	s.logger.Info("profile created", slog.String("id", id))
	return p, nil
}

// Create inserts a profile for a freshly registered account. An empty name
// falls back to DefaultName so the record is never blank.
func (s *Service) Create(ctx context.Context, id, name string) (*models.Profile, error) {
	if name == "" {
		name = DefaultName
	}
	p := &models.Profile{
		ID:      id,
		Name:    name,
		Role:    models.RoleUser,
		Created: time.Now().UTC().UnixMilli(),
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile %s: %w", id, err)
	}
	return p, nil
}

// Get returns the profile for id or models.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", id, err)
	}
	if p == nil {
		return nil, models.ErrNotFound
	}
	return p, nil
}
