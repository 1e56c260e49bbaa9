package domain

import (
	"strings"

	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	"github.com/samber/lo"
)

// GroupKey is the case-insensitive grouping key for an entry name.
// Matching is by name, not id: renames detach history and duplicate
// names across suppliers merge. That is the recorded behavior of the
// shop's books and must stay observable.
func GroupKey(name string) string {
	return strings.ToLower(name)
}

// Consumption accumulates the quantity of every part name used across
// all service records, regardless of which inventory entry it logically
// came from.
func Consumption(records []svcdomain.ServiceRecord) map[string]int {
	used := make(map[string]int)
	for _, record := range records {
		for _, sp := range record.Parts {
			used[GroupKey(sp.PartName)] += sp.Quantity
		}
	}
	return used
}

// Aggregate merges raw inventory entries by name and computes available
// stock net of service consumption. Stock is derived on every read, never
// stored as a running balance, so there is no decrement to get wrong.
// Available stock clamps at zero: overselling surfaces as an out-of-stock
// badge downstream, not as an error here.
func Aggregate(parts []Part, records []svcdomain.ServiceRecord) []AggregatedPart {
	used := Consumption(records)

	groups := make(map[string]*AggregatedPart, len(parts))
	order := make([]string, 0, len(parts))

	for _, part := range parts {
		key := GroupKey(part.Name)
		if group, ok := groups[key]; ok {
			group.OriginalStockQuantity += part.StockQuantity
			group.TotalValue += part.Price * float64(part.OriginalQuantity)
			group.Entries++
			// Threshold follows the last entry folded into the group.
			group.MinStockLevel = part.MinStockLevel
			continue
		}
		groups[key] = &AggregatedPart{
			Part:                  part,
			OriginalStockQuantity: part.StockQuantity,
			TotalValue:            part.Price * float64(part.OriginalQuantity),
			Entries:               1,
		}
		order = append(order, key)
	}

	out := make([]AggregatedPart, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.StockQuantity = max(0, group.OriginalStockQuantity-used[key])
		out = append(out, *group)
	}
	return out
}

// LowStockParts filters the aggregated view down to groups at or below
// their reorder threshold.
func LowStockParts(aggregated []AggregatedPart) []AggregatedPart {
	return lo.Filter(aggregated, func(p AggregatedPart, _ int) bool {
		return p.LowStock()
	})
}
