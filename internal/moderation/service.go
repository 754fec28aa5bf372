// Package moderation implements the status lifecycle of listings:
// pending -> active (approve) | inactive (reject), with owners allowed to flip
// their own listings between active and inactive afterwards.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/centralbjl/directory/internal/authz"
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

// Recorder receives a notification for every applied transition. The metrics
// collector implements it; tests use a no-op.
type Recorder interface {
	RecordStatusTransition(kind models.ListingKind, status models.Status)
}

type nopRecorder struct{}

func (nopRecorder) RecordStatusTransition(models.ListingKind, models.Status) {}

type Service struct {
	repo     repository.ListingLifecycleRepo
	recorder Recorder
	logger   *slog.Logger
}

func NewService(repo repository.ListingLifecycleRepo, recorder Recorder, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, recorder: recorder, logger: logger}
}

// SetStatus moves the listing identified by (kind, id) to newStatus on behalf
// of actor. It updates exactly the status column; payload fields are never
// touched and no other listing is affected. On denial or failure the listing
// is left unchanged and the specific error kind is returned; no retry is
// attempted.
func (s *Service) SetStatus(ctx context.Context, kind models.ListingKind, id string, newStatus models.Status, actor *models.Profile) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown listing kind %q", models.ErrNotFound, kind)
	}
	// pending is creation-only: a rejected listing is re-submitted as a new
	// entity, never transitioned back.
	if newStatus != models.StatusActive && newStatus != models.StatusInactive {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, newStatus)
	}
	if actor == nil {
		return models.ErrUnauthenticated
	}

	meta, err := s.repo.GetListingMeta(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("load %s %s: %w", kind, id, err)
	}
	if meta == nil {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}

	if !authz.CanSetStatus(actor, meta.UserID, meta.Status, newStatus) {
		return fmt.Errorf("%s %s -> %s by %s: %w", kind, id, newStatus, actor.ID, models.ErrForbidden)
	}

	if err := s.repo.UpdateListingStatus(ctx, kind, id, newStatus); err != nil {
		return fmt.Errorf("update %s %s status: %w", kind, id, err)
	}

	s.recorder.RecordStatusTransition(kind, newStatus)
	s.logger.Info("listing status changed",
		slog.String("kind", string(kind)),
		slog.String("id", id),
		slog.String("from", string(meta.Status)),
		slog.String("to", string(newStatus)),
		slog.String("actor", actor.ID),
	)
	return nil
}

// Delete removes the listing on behalf of actor (owner or admin).
func (s *Service) Delete(ctx context.Context, kind models.ListingKind, id string, actor *models.Profile) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown listing kind %q", models.ErrNotFound, kind)
	}
	if actor == nil {
		return models.ErrUnauthenticated
	}

	meta, err := s.repo.GetListingMeta(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("load %s %s: %w", kind, id, err)
	}
	if meta == nil {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	if !authz.CanDelete(actor, meta.UserID) {
		return fmt.Errorf("delete %s %s by %s: %w", kind, id, actor.ID, models.ErrForbidden)
	}

	if err := s.repo.DeleteListing(ctx, kind, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}

	s.logger.Info("listing deleted",
		slog.String("kind", string(kind)),
		slog.String("id", id),
		slog.String("actor", actor.ID),
	)
	return nil
}
