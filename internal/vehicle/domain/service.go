package domain

import "context"

// Service owns the vehicle collection. There is no delete: service
// history references vehicles by id and the shop keeps them on the books.
type Service interface {
	Load(ctx context.Context) error
	Vehicles() []Vehicle
	GetByID(id string) (Vehicle, bool)
	Add(ctx context.Context, req CreateRequest) (*Vehicle, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Vehicle, error)
	Replace(ctx context.Context, vehicles []Vehicle) error
}
