package domain

import "context"

// Service owns the inventory-entry collection. Add always appends a new
// entry, never merges into an existing one; deleting an entry removes its
// history permanently and never cascades into service records.
type Service interface {
	Load(ctx context.Context) error
	Parts() []Part
	Add(ctx context.Context, req CreateRequest) (*Part, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Part, error)
	Delete(ctx context.Context, id string) error
	Replace(ctx context.Context, parts []Part) error
}
