package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/auth"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/config"
	"github.com/garagekit/garagekit/internal/inventory"
	"github.com/garagekit/garagekit/internal/migration"
	"github.com/garagekit/garagekit/internal/observability"
	"github.com/garagekit/garagekit/internal/reporting"
	reportingdomain "github.com/garagekit/garagekit/internal/reporting/domain"
	"github.com/garagekit/garagekit/internal/seed"
	"github.com/garagekit/garagekit/internal/servicelog"
	"github.com/garagekit/garagekit/internal/store"
	"github.com/garagekit/garagekit/internal/vehicle"
	vehicledomain "github.com/garagekit/garagekit/internal/vehicle/domain"
	"github.com/garagekit/garagekit/pkg/currency"
	"github.com/garagekit/garagekit/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		store.Module,

		// Functional domains
		inventory.Module,
		vehicle.Module,
		servicelog.Module,
		reporting.Module,
		auth.Module,
		migration.Module,
		seed.Module,

		fx.Invoke(run),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

type runParams struct {
	fx.In

	Config    config.Config
	Log       *zap.Logger
	Vehicles  vehicledomain.Service
	Reporting reportingdomain.Service
	Seeder    *seed.Seeder
	Shutdown  fx.Shutdowner
}

// run finishes startup after migration: loads the vehicle collection,
// seeds the sample shop when asked, logs the dashboard summary, and
// exits. There is no server to keep the process alive.
func run(lc fx.Lifecycle, p runParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Vehicles.Load(ctx); err != nil {
				p.Log.Warn("vehicle load degraded", zap.Error(err))
			}

			if p.Config.Bootstrap.SeedSampleData {
				if err := p.Seeder.EnsureSampleData(ctx); err != nil {
					return err
				}
			}

			summary := p.Reporting.Summary(reportingdomain.Range{})
			p.Log.Info("dashboard summary",
				zap.Int("services", summary.ServiceCount),
				zap.Int("completed", summary.CompletedServices),
				zap.Int("vehicles", summary.VehicleCount),
				zap.Int("unique_parts", summary.UniquePartCount),
				zap.Int("low_stock", summary.LowStockCount),
				zap.String("total_revenue", currency.FormatVND(summary.TotalServiceRevenue)),
				zap.String("labor_revenue", currency.FormatVND(summary.TotalLaborRevenue)),
				zap.String("parts_revenue", currency.FormatVND(summary.TotalPartsRevenue)),
				zap.String("average_service", currency.FormatVND(summary.AverageServiceValue)),
			)

			return p.Shutdown.Shutdown()
		},
	})
}
