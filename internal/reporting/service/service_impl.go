package service

import (
	"time"

	"github.com/garagekit/garagekit/internal/config"
	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	reportingdomain "github.com/garagekit/garagekit/internal/reporting/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	vehicledomain "github.com/garagekit/garagekit/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	Shop       *config.ShopConfigHolder
	Inventory  invdomain.Service
	ServiceLog svcdomain.Service
	Vehicles   vehicledomain.Service
}

type Service struct {
	log        *zap.Logger
	shop       *config.ShopConfigHolder
	inventory  invdomain.Service
	servicelog svcdomain.Service
	vehicles   vehicledomain.Service
}

func New(p Params) reportingdomain.Service {
	return &Service{
		log:        p.Log.Named("reporting.service"),
		shop:       p.Shop,
		inventory:  p.Inventory,
		servicelog: p.ServiceLog,
		vehicles:   p.Vehicles,
	}
}

func (s *Service) AggregatedParts() []invdomain.AggregatedPart {
	return invdomain.Aggregate(s.inventory.Parts(), s.servicelog.Records())
}

func (s *Service) FilteredServices(rng reportingdomain.Range) []svcdomain.ServiceRecord {
	return reportingdomain.FilterByDay(s.servicelog.Records(), rng, svcdomain.ServiceRecord.Day)
}

// FilteredParts windows inventory entries on their addedAt date
// (createdAt for entries predating addedAt), as the inventory screen
// does.
func (s *Service) FilteredParts(rng reportingdomain.Range) []invdomain.Part {
	return reportingdomain.FilterByDay(s.inventory.Parts(), rng, func(p invdomain.Part) (time.Time, bool) {
		return p.AddedDay(), true
	})
}

// Summary computes the dashboard figures over the records inside the
// range. The parts-cost figure always spans the whole inventory
// history; only service revenue respects the window.
func (s *Service) Summary(rng reportingdomain.Range) reportingdomain.Summary {
	filtered := s.FilteredServices(rng)
	aggregated := s.AggregatedParts()
	low := invdomain.LowStockParts(aggregated)

	var partsRevenue, laborRevenue float64
	completed := 0
	for _, record := range filtered {
		partsRevenue += record.PartsTotal()
		laborRevenue += record.LaborTotal()
		if record.Status == svcdomain.StatusCompleted {
			completed++
		}
	}

	var partsCost float64
	for _, part := range aggregated {
		partsCost += part.Cost * float64(part.OriginalStockQuantity)
	}

	total := partsRevenue + laborRevenue
	average := 0.0
	if len(filtered) > 0 {
		average = total / float64(len(filtered))
	}

	return reportingdomain.Summary{
		TotalPartsRevenue:   partsRevenue,
		TotalLaborRevenue:   laborRevenue,
		TotalServiceRevenue: total,
		TotalPartsCost:      partsCost,
		AverageServiceValue: average,
		ServiceCount:        len(filtered),
		CompletedServices:   completed,
		VehicleCount:        len(s.vehicles.Vehicles()),
		UniquePartCount:     len(aggregated),
		LowStockCount:       len(low),
		RecentServices:      recent(filtered, s.shop.Get().RecentServiceCount),
		LowStockParts:       low,
	}
}

// recent returns the last n records, newest first.
func recent(records []svcdomain.ServiceRecord, n int) []svcdomain.ServiceRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]svcdomain.ServiceRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}
