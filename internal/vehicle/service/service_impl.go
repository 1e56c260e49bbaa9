package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/store"
	vehicledomain "github.com/garagekit/garagekit/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	KV    store.KV
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

type Service struct {
	kv    store.KV
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node

	vehicles []vehicledomain.Vehicle
	loaded   bool
}

func New(p Params) vehicledomain.Service {
	return &Service{
		kv:    p.KV,
		log:   p.Log.Named("vehicle.service"),
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, store.KeyVehicles)
	if err != nil {
		s.vehicles = nil
		s.loaded = true
		s.log.Error("load vehicles failed, starting empty", zap.Error(err))
		return fmt.Errorf("load vehicles: %w", err)
	}
	if !ok {
		s.vehicles = nil
		s.loaded = true
		return nil
	}

	var vehicles []vehicledomain.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		s.vehicles = nil
		s.loaded = true
		s.log.Error("decode vehicles failed, starting empty", zap.Error(err))
		return fmt.Errorf("decode vehicles: %w", err)
	}
	s.vehicles = vehicles
	s.loaded = true
	return nil
}

func (s *Service) Vehicles() []vehicledomain.Vehicle {
	out := make([]vehicledomain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// GetByID resolves a vehicle reference. A dangling id yields ok=false,
// never an error; the caller shows its own placeholder.
func (s *Service) GetByID(id string) (vehicledomain.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return vehicledomain.Vehicle{}, false
}

func (s *Service) Add(ctx context.Context, req vehicledomain.CreateRequest) (*vehicledomain.Vehicle, error) {
	now := s.clock.Now()
	vehicle := vehicledomain.Vehicle{
		ID:            s.genID.Generate().String(),
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		VIN:           req.VIN,
		LicensePlate:  req.LicensePlate,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Odometer:      req.Odometer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	next := append(s.Vehicles(), vehicle)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *Service) Update(ctx context.Context, id string, req vehicledomain.UpdateRequest) (*vehicledomain.Vehicle, error) {
	next := s.Vehicles()
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, vehicledomain.ErrVehicleNotFound
	}

	vehicle := next[idx]
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.VIN != nil {
		vehicle.VIN = *req.VIN
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = *req.LicensePlate
	}
	if req.CustomerName != nil {
		vehicle.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		vehicle.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		vehicle.CustomerEmail = *req.CustomerEmail
	}
	if req.Odometer != nil {
		vehicle.Odometer = *req.Odometer
	}
	vehicle.UpdatedAt = s.clock.Now()
	next[idx] = vehicle

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Replace swaps in a fully rebuilt collection.
func (s *Service) Replace(ctx context.Context, vehicles []vehicledomain.Vehicle) error {
	next := make([]vehicledomain.Vehicle, len(vehicles))
	copy(next, vehicles)
	return s.persist(ctx, next)
}

func (s *Service) persist(ctx context.Context, next []vehicledomain.Vehicle) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode vehicles: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyVehicles, raw); err != nil {
		s.log.Error("save vehicles failed", zap.Error(err))
		return fmt.Errorf("save vehicles: %w", err)
	}
	s.vehicles = next
	return nil
}
