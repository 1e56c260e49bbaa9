package domain

import (
	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
)

// Service exposes the derived dashboard views. All methods are pure
// reads over the loaded collections.
type Service interface {
	Summary(rng Range) Summary
	AggregatedParts() []invdomain.AggregatedPart
	FilteredServices(rng Range) []svcdomain.ServiceRecord
	FilteredParts(rng Range) []invdomain.Part
}
