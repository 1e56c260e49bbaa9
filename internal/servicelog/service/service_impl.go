package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	"github.com/garagekit/garagekit/internal/store"
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

	records []svcdomain.ServiceRecord
	loaded  bool
}

func New(p Params) svcdomain.Service {
	return &Service{
		kv:    p.KV,
		log:   p.Log.Named("servicelog.service"),
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, store.KeyServices)
	if err != nil {
		s.records = nil
		s.loaded = true
		s.log.Error("load service records failed, starting empty", zap.Error(err))
		return fmt.Errorf("load service records: %w", err)
	}
	if !ok {
		s.records = nil
		s.loaded = true
		return nil
	}

	var records []svcdomain.ServiceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.records = nil
		s.loaded = true
		s.log.Error("decode service records failed, starting empty", zap.Error(err))
		return fmt.Errorf("decode service records: %w", err)
	}
	s.records = records
	s.loaded = true
	return nil
}

func (s *Service) Records() []svcdomain.ServiceRecord {
	out := make([]svcdomain.ServiceRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Service) ByVehicle(vehicleID string) []svcdomain.ServiceRecord {
	var out []svcdomain.ServiceRecord
	for _, record := range s.records {
		if record.VehicleID == vehicleID {
			out = append(out, record)
		}
	}
	return out
}

// Add stores the record with the caller-computed totalCost as submitted.
// Inventory quantities are NOT deducted here: each inventory entry keeps
// its fixed quantity as a record of what was added, and available stock
// is derived by the aggregator from the full service history.
func (s *Service) Add(ctx context.Context, req svcdomain.CreateRequest) (*svcdomain.ServiceRecord, error) {
	now := s.clock.Now()
	record := svcdomain.ServiceRecord{
		ID:          s.genID.Generate().String(),
		VehicleID:   req.VehicleID,
		Date:        req.Date,
		Odometer:    req.Odometer,
		Description: req.Description,
		LaborHours:  req.LaborHours,
		LaborRate:   req.LaborRate,
		Parts:       append([]svcdomain.ServicePart(nil), req.Parts...),
		TotalCost:   req.TotalCost,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(s.Records(), record)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) Update(ctx context.Context, id string, req svcdomain.UpdateRequest) (*svcdomain.ServiceRecord, error) {
	next := s.Records()
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, svcdomain.ErrServiceNotFound
	}

	record := next[idx]
	if req.VehicleID != nil {
		record.VehicleID = *req.VehicleID
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Odometer != nil {
		record.Odometer = *req.Odometer
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.LaborHours != nil {
		record.LaborHours = *req.LaborHours
	}
	if req.LaborRate != nil {
		record.LaborRate = *req.LaborRate
	}
	if req.Parts != nil {
		record.Parts = append([]svcdomain.ServicePart(nil), req.Parts...)
	}
	if req.TotalCost != nil {
		record.TotalCost = *req.TotalCost
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	record.UpdatedAt = s.clock.Now()
	next[idx] = record

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &record, nil
}

// Replace swaps in a fully rebuilt collection, used by the migration
// write-back.
func (s *Service) Replace(ctx context.Context, records []svcdomain.ServiceRecord) error {
	next := make([]svcdomain.ServiceRecord, len(records))
	copy(next, records)
	return s.persist(ctx, next)
}

func (s *Service) persist(ctx context.Context, next []svcdomain.ServiceRecord) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode service records: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyServices, raw); err != nil {
		s.log.Error("save service records failed", zap.Error(err))
		return fmt.Errorf("save service records: %w", err)
	}
	s.records = next
	return nil
}
