package events

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("event not found")

// Repository persists the event collection. Update performs its
// read-merge-write cycle atomically with respect to other mutations on
// the same store; callers pass an already validated patch body.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Insert(ctx context.Context, event Event) (*Event, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Event, error)
	Delete(ctx context.Context, id string) error
}
