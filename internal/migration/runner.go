package migration

import (
	"context"

	"github.com/garagekit/garagekit/internal/clock"
	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type RunnerParams struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	Inventory  invdomain.Service
	ServiceLog svcdomain.Service
}

// Runner loads both collections, normalizes them, and persists the
// normalized form back when anything changed (write-back-on-read).
type Runner struct {
	log        *zap.Logger
	clock      clock.Clock
	inventory  invdomain.Service
	servicelog svcdomain.Service
}

func NewRunner(p RunnerParams) *Runner {
	return &Runner{
		log:        p.Log.Named("migration"),
		clock:      p.Clock,
		inventory:  p.Inventory,
		servicelog: p.ServiceLog,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	// Load failures degrade to empty collections; nothing would be
	// written back for those, so migration continues with what loaded.
	if err := r.inventory.Load(ctx); err != nil {
		r.log.Warn("inventory load degraded", zap.Error(err))
	}
	if err := r.servicelog.Load(ctx); err != nil {
		r.log.Warn("service log load degraded", zap.Error(err))
	}

	parts, records, changed := Normalize(r.inventory.Parts(), r.servicelog.Records(), r.clock.Now())
	if !changed {
		return nil
	}

	if err := r.inventory.Replace(ctx, parts); err != nil {
		return err
	}
	if err := r.servicelog.Replace(ctx, records); err != nil {
		return err
	}
	r.log.Info("normalized persisted records",
		zap.Int("parts", len(parts)),
		zap.Int("service_records", len(records)),
	)
	return nil
}

var Module = fx.Module("migration",
	fx.Provide(NewRunner),
	fx.Invoke(func(lc fx.Lifecycle, r *Runner) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return r.Run(ctx)
			},
		})
	}),
)
