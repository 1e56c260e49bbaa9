package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
)

// ServicePart is one line of parts consumed by a service. partName is a
// denormalized copy used for matching because partId may point at an
// inventory entry that has since been deleted.
type ServicePart struct {
	PartID     string  `json:"partId"`
	PartName   string  `json:"partName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// ServiceRecord is one service event against one vehicle. vehicleId is a
// soft reference; dangling ids are tolerated everywhere.
type ServiceRecord struct {
	ID          string        `json:"id"`
	VehicleID   string        `json:"vehicleId"`
	Date        string        `json:"date"`
	Odometer    int           `json:"odometer"`
	Description string        `json:"description"`
	LaborHours  float64       `json:"laborHours"`
	LaborRate   float64       `json:"laborRate"`
	Parts       []ServicePart `json:"parts"`
	TotalCost   float64       `json:"totalCost"`
	Status      Status        `json:"status"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Day parses the calendar date of the record. The stored form is
// YYYY-MM-DD; full timestamps from older exports are accepted too.
func (r ServiceRecord) Day() (time.Time, bool) {
	return ParseDay(r.Date)
}

// LaborTotal is hours times rate, independent of the stored totalCost.
func (r ServiceRecord) LaborTotal() float64 {
	return r.LaborHours * r.LaborRate
}

// PartsTotal sums the stored line totals.
func (r ServiceRecord) PartsTotal() float64 {
	var total float64
	for _, p := range r.Parts {
		total += p.TotalPrice
	}
	return total
}

// ParseDay parses a calendar date, normalizing any time-of-day away.
func ParseDay(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// CreateRequest carries the caller-supplied fields for a new record.
// TotalCost is stored exactly as submitted; the core does not recompute
// it, and no inventory quantity is decremented.
type CreateRequest struct {
	VehicleID   string
	Date        string
	Odometer    int
	Description string
	LaborHours  float64
	LaborRate   float64
	Parts       []ServicePart
	TotalCost   float64
	Status      Status
	Notes       string
}

// UpdateRequest patches an existing record. Nil fields are left alone.
type UpdateRequest struct {
	VehicleID   *string
	Date        *string
	Odometer    *int
	Description *string
	LaborHours  *float64
	LaborRate   *float64
	Parts       []ServicePart
	TotalCost   *float64
	Status      *Status
	Notes       *string
}

var (
	ErrServiceNotFound = errors.New("service_record_not_found")
)
