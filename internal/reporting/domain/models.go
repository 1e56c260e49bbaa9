package domain

import (
	"time"

	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
)

// Range is an inclusive calendar-date window. Nil bounds are open; a
// fully open range is the identity filter.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) IsOpen() bool {
	return r.Start == nil && r.End == nil
}

// ContainsDay evaluates the window at date-only granularity so that
// time-of-day and timezone components cannot push a record across a
// boundary.
func (r Range) ContainsDay(t time.Time) bool {
	day := DayOf(t)
	if r.Start != nil && day.Before(DayOf(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(DayOf(*r.End)) {
		return false
	}
	return true
}

// DayOf truncates a timestamp to its UTC calendar date.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterByDay keeps the records whose date falls inside the range. A
// record whose date cannot be resolved is kept only by the identity
// filter, matching how an unparseable date behaves in the shop's books.
func FilterByDay[T any](records []T, rng Range, day func(T) (time.Time, bool)) []T {
	if rng.IsOpen() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		d, ok := day(record)
		if !ok {
			continue
		}
		if rng.ContainsDay(d) {
			out = append(out, record)
		}
	}
	return out
}

// Quick presets matching the dashboard's filter shortcuts.

func Today(now time.Time) Range {
	day := DayOf(now)
	return Range{Start: &day, End: &day}
}

func LastNDays(now time.Time, n int) Range {
	end := DayOf(now)
	start := end.AddDate(0, 0, -n)
	return Range{Start: &start, End: &end}
}

// Summary aggregates the dashboard's revenue and stock figures over a
// filtered set of service records.
type Summary struct {
	// Parts revenue trusts the stored, reconciled line totals; it is
	// not re-derived from unit prices here.
	TotalPartsRevenue float64 `json:"totalPartsRevenue"`
	TotalLaborRevenue float64 `json:"totalLaborRevenue"`
	// TotalServiceRevenue is parts plus labor.
	TotalServiceRevenue float64 `json:"totalServiceRevenue"`
	// TotalPartsCost is the cost basis of all stock ever added
	// (cost x originalStockQuantity per group), an intentional
	// approximation rather than cost of stock consumed.
	TotalPartsCost      float64 `json:"totalPartsCost"`
	AverageServiceValue float64 `json:"averageServiceValue"`

	ServiceCount      int `json:"serviceCount"`
	CompletedServices int `json:"completedServices"`
	VehicleCount      int `json:"vehicleCount"`
	UniquePartCount   int `json:"uniquePartCount"`
	LowStockCount     int `json:"lowStockCount"`

	RecentServices []svcdomain.ServiceRecord  `json:"recentServices"`
	LowStockParts  []invdomain.AggregatedPart `json:"lowStockParts"`
}
