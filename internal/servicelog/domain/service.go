package domain

import "context"

// Service owns the service-record collection. Mutations persist the full
// collection before the in-memory view is swapped; callers are expected
// to invoke them serially.
type Service interface {
	Load(ctx context.Context) error
	Records() []ServiceRecord
	ByVehicle(vehicleID string) []ServiceRecord
	Add(ctx context.Context, req CreateRequest) (*ServiceRecord, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*ServiceRecord, error)
	Replace(ctx context.Context, records []ServiceRecord) error
}
