// Package store persists each record collection as one serialized JSON
// array under a logical key, the local-storage contract the rest of the
// application is written against.
package store

import "context"

// Logical collection keys. The values are part of the stored data format
// and must not change.
const (
	KeyParts    = "shop_parts"
	KeyVehicles = "shop_vehicles"
	KeyServices = "shop_services"
	KeyUsers    = "shop_users"
	KeyAuthUser = "auth_user"
)

// KV is the persistence contract. Get reports absence with ok=false
// rather than an error; Set replaces the whole value for a key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
