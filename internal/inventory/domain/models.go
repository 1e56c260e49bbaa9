package domain

import (
	"errors"
	"time"
)

// Part is one inventory entry: a single addition of stock for a named
// part, not a deduplicated catalog row. Entries sharing a name (compared
// case-insensitively) are merged by Aggregate.
type Part struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PartNumber  string  `json:"partNumber"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	// StockQuantity is the remaining units from this entry.
	StockQuantity int `json:"stockQuantity"`
	// OriginalQuantity is the unit count recorded when the entry was
	// created; immutable afterwards. Zero alongside a positive
	// StockQuantity means the field predates its introduction and is
	// backfilled by the migration layer.
	OriginalQuantity int       `json:"originalQuantity"`
	MinStockLevel    int       `json:"minStockLevel"`
	Supplier         string    `json:"supplier"`
	Category         string    `json:"category"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	AddedAt          time.Time `json:"addedAt"`
}

// AddedDay is the entry's effective date for sorting and filtering:
// addedAt when set, otherwise createdAt.
func (p Part) AddedDay() time.Time {
	if !p.AddedAt.IsZero() {
		return p.AddedAt
	}
	return p.CreatedAt
}

// AggregatedPart is the deduplicated, cross-entry view of all inventory
// entries sharing a name. Its StockQuantity is the available stock net of
// consumption recorded in service history, clamped at zero.
type AggregatedPart struct {
	Part
	// OriginalStockQuantity sums per-entry stockQuantity before
	// consumption is subtracted.
	OriginalStockQuantity int `json:"originalStockQuantity"`
	// TotalValue sums price x originalQuantity over the merged entries.
	TotalValue float64 `json:"totalValue"`
	// Entries counts the raw entries merged into this row.
	Entries int `json:"entries"`
}

// LowStock reports whether available stock has reached the reorder
// threshold of the group.
func (p AggregatedPart) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// CreateRequest carries the caller-supplied fields for a new entry.
// Numeric fields arrive already coerced; the boundary substitutes the
// configured default minimum stock level when none is supplied.
type CreateRequest struct {
	Name          string
	PartNumber    string
	Description   string
	Price         float64
	Cost          float64
	StockQuantity int
	MinStockLevel *int
	Supplier      string
	Category      string
}

// UpdateRequest patches an existing entry. Nil fields are left alone;
// addedAt and originalQuantity are never writable.
type UpdateRequest struct {
	Name          *string
	PartNumber    *string
	Description   *string
	Price         *float64
	Cost          *float64
	StockQuantity *int
	MinStockLevel *int
	Supplier      *string
	Category      *string
}

var (
	ErrPartNotFound = errors.New("part_not_found")
)
