package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/config"
	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
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
	Shop  *config.ShopConfigHolder
}

// Service keeps the inventory collection in memory and writes the whole
// collection through the KV store on every mutation. The new slice is
// swapped in only after the write succeeded, so a failed save leaves the
// last good state visible. Mutations are expected to arrive serially
// from a single caller.
type Service struct {
	kv    store.KV
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	shop  *config.ShopConfigHolder

	parts  []invdomain.Part
	loaded bool
}

func New(p Params) invdomain.Service {
	return &Service{
		kv:    p.KV,
		log:   p.Log.Named("inventory.service"),
		clock: p.Clock,
		genID: p.GenID,
		shop:  p.Shop,
	}
}

func (s *Service) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, store.KeyParts)
	if err != nil {
		s.parts = nil
		s.loaded = true
		s.log.Error("load parts failed, starting empty", zap.Error(err))
		return fmt.Errorf("load parts: %w", err)
	}
	if !ok {
		s.parts = nil
		s.loaded = true
		return nil
	}

	var parts []invdomain.Part
	if err := json.Unmarshal(raw, &parts); err != nil {
		s.parts = nil
		s.loaded = true
		s.log.Error("decode parts failed, starting empty", zap.Error(err))
		return fmt.Errorf("decode parts: %w", err)
	}
	s.parts = parts
	s.loaded = true
	return nil
}

// Parts returns a copy of the collection.
func (s *Service) Parts() []invdomain.Part {
	out := make([]invdomain.Part, len(s.parts))
	copy(out, s.parts)
	return out
}

func (s *Service) Add(ctx context.Context, req invdomain.CreateRequest) (*invdomain.Part, error) {
	now := s.clock.Now()

	minStock := s.shop.Get().DefaultMinStockLevel
	if req.MinStockLevel != nil {
		minStock = *req.MinStockLevel
	}

	// Always a fresh entry: each addition of stock keeps its own
	// history and is merged with same-named entries only at read time.
	part := invdomain.Part{
		ID:               s.genID.Generate().String(),
		Name:             req.Name,
		PartNumber:       req.PartNumber,
		Description:      req.Description,
		Price:            req.Price,
		Cost:             req.Cost,
		StockQuantity:    req.StockQuantity,
		OriginalQuantity: req.StockQuantity,
		MinStockLevel:    minStock,
		Supplier:         req.Supplier,
		Category:         req.Category,
		CreatedAt:        now,
		UpdatedAt:        now,
		AddedAt:          now,
	}

	next := append(s.Parts(), part)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *Service) Update(ctx context.Context, id string, req invdomain.UpdateRequest) (*invdomain.Part, error) {
	next := s.Parts()
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, invdomain.ErrPartNotFound
	}

	part := next[idx]
	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.PartNumber != nil {
		part.PartNumber = *req.PartNumber
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	if req.Price != nil {
		part.Price = *req.Price
	}
	if req.Cost != nil {
		part.Cost = *req.Cost
	}
	if req.StockQuantity != nil {
		part.StockQuantity = *req.StockQuantity
	}
	if req.MinStockLevel != nil {
		part.MinStockLevel = *req.MinStockLevel
	}
	if req.Supplier != nil {
		part.Supplier = *req.Supplier
	}
	if req.Category != nil {
		part.Category = *req.Category
	}
	part.UpdatedAt = s.clock.Now()
	next[idx] = part

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return &part, nil
}

// Delete removes the entry entirely. Service records referencing the
// entry's name or id are left untouched; a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	next := make([]invdomain.Part, 0, len(s.parts))
	for _, part := range s.parts {
		if part.ID != id {
			next = append(next, part)
		}
	}
	return s.persist(ctx, next)
}

// Replace swaps in a fully rebuilt collection, used by the migration
// write-back.
func (s *Service) Replace(ctx context.Context, parts []invdomain.Part) error {
	next := make([]invdomain.Part, len(parts))
	copy(next, parts)
	return s.persist(ctx, next)
}

func (s *Service) persist(ctx context.Context, next []invdomain.Part) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode parts: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyParts, raw); err != nil {
		s.log.Error("save parts failed", zap.Error(err))
		return fmt.Errorf("save parts: %w", err)
	}
	s.parts = next
	return nil
}
