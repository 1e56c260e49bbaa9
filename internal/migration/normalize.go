// Package migration repairs persisted records whose shape predates the
// current schema and re-prices service history from the live catalog.
// The transform is pure; persisting the result is the caller's job.
package migration

import (
	"time"

	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
)

// Normalize backfills missing part fields and overwrites every service
// part's unit price with the selling price of the most recently added
// inventory entry of the same name. It is idempotent: a second pass over
// its own output reports changed=false.
func Normalize(parts []invdomain.Part, records []svcdomain.ServiceRecord, now time.Time) ([]invdomain.Part, []svcdomain.ServiceRecord, bool) {
	changed := false

	outParts := make([]invdomain.Part, len(parts))
	copy(outParts, parts)
	for i := range outParts {
		if normalizePart(&outParts[i], now) {
			changed = true
		}
	}

	latest := latestByName(outParts)

	outRecords := make([]svcdomain.ServiceRecord, len(records))
	copy(outRecords, records)
	for i := range outRecords {
		record := &outRecords[i]
		if len(record.Parts) == 0 {
			continue
		}
		repriced := append([]svcdomain.ServicePart(nil), record.Parts...)
		recordChanged := false
		for j := range repriced {
			if repriceServicePart(&repriced[j], latest) {
				recordChanged = true
			}
		}
		if recordChanged {
			record.Parts = repriced
			changed = true
		}
	}

	return outParts, outRecords, changed
}

// normalizePart applies the one-way backfills: a missing addedAt becomes
// createdAt (or now when that is missing too), and an unset
// originalQuantity becomes the current stockQuantity. Once set they are
// never recomputed.
func normalizePart(part *invdomain.Part, now time.Time) bool {
	changed := false
	if part.AddedAt.IsZero() {
		if !part.CreatedAt.IsZero() {
			part.AddedAt = part.CreatedAt
		} else {
			part.AddedAt = now
		}
		changed = true
	}
	if part.OriginalQuantity == 0 && part.StockQuantity > 0 {
		part.OriginalQuantity = part.StockQuantity
		changed = true
	}
	return changed
}

// latestByName indexes parts by group key, keeping the entry with the
// most recent addedAt (createdAt when addedAt is unset).
func latestByName(parts []invdomain.Part) map[string]invdomain.Part {
	latest := make(map[string]invdomain.Part, len(parts))
	for _, part := range parts {
		key := invdomain.GroupKey(part.Name)
		current, ok := latest[key]
		if !ok || part.AddedDay().After(current.AddedDay()) {
			latest[key] = part
		}
	}
	return latest
}

// repriceServicePart rewrites the line to the matched entry's current
// selling price. Matching is by name only; with no surviving match the
// line keeps its recorded price.
func repriceServicePart(sp *svcdomain.ServicePart, latest map[string]invdomain.Part) bool {
	entry, ok := latest[invdomain.GroupKey(sp.PartName)]
	if !ok {
		return false
	}
	unit := entry.Price
	total := float64(sp.Quantity) * unit
	if sp.UnitPrice == unit && sp.TotalPrice == total {
		return false
	}
	sp.UnitPrice = unit
	sp.TotalPrice = total
	return true
}
