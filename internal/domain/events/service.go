package events

import (
	"context"
	"time"

	"github.com/venuebook/server/internal/domain/ids"
)

// Service implements the dev event store operations over a Repository.
// Every authenticated identity sees the full collection; ownership is
// recorded at creation and never consulted on reads. That cross-owner
// visibility is the documented dev-mode contract.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the body, mints a ULID, stamps ownership and
// timestamps, and persists the new record.
func (s *Service) Create(ctx context.Context, ownerID string, body map[string]any) (*Event, error) {
	if err := ValidateCreate(body); err != nil {
		return nil, err
	}

	id, err := ids.NewULID()
	if err != nil {
		return nil, err
	}

	event := NewEvent(id, ownerID, body, time.Now().UTC())
	return s.repo.Insert(ctx, event)
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.Get(ctx, id)
}

// Update shallow-merges the body over the stored record. Protected
// fields (id, ownerId, createdAt, updatedAt) are rejected up front.
func (s *Service) Update(ctx context.Context, id string, body map[string]any) (*Event, error) {
	if err := ValidatePatch(body); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, body)
}

// Delete removes the record if it exists. Deleting an unknown id is a
// no-op, not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
