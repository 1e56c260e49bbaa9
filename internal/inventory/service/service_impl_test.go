package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/config"
	invdomain "github.com/garagekit/garagekit/internal/inventory/domain"
	"github.com/garagekit/garagekit/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestKV(t *testing.T) store.KV {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	kv, err := store.NewSQLite(db)
	require.NoError(t, err)
	return kv
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func newTestService(t *testing.T, kv store.KV) (*Service, *clock.FakeClock) {
	t.Helper()
	fake := clock.NewFakeClock(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		KV:    kv,
		Log:   zap.NewNop(),
		Clock: fake,
		GenID: mustNode(t),
		Shop:  config.NewStaticShopConfigHolder(config.DefaultShopConfig()),
	})
	return svc.(*Service), fake
}

func TestAddStampsDefaultsAndPersists(t *testing.T) {
	kv := newTestKV(t)
	svc, fake := newTestService(t, kv)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	part, err := svc.Add(ctx, invdomain.CreateRequest{
		Name:          "Oil Filter",
		Price:         249000,
		Cost:          125000,
		StockQuantity: 12,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, part.ID)
	assert.Equal(t, 12, part.OriginalQuantity)
	assert.Equal(t, config.DefaultShopConfig().DefaultMinStockLevel, part.MinStockLevel)
	assert.Equal(t, fake.Now(), part.CreatedAt)
	assert.Equal(t, fake.Now(), part.AddedAt)

	// survives a reload from storage
	reloaded, _ := newTestService(t, kv)
	require.NoError(t, reloaded.Load(ctx))
	parts := reloaded.Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, part.ID, parts[0].ID)
}

func TestAddHonorsExplicitMinStockLevel(t *testing.T) {
	svc, _ := newTestService(t, newTestKV(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	minLevel := 9
	part, err := svc.Add(ctx, invdomain.CreateRequest{Name: "Coolant", StockQuantity: 3, MinStockLevel: &minLevel})
	require.NoError(t, err)
	assert.Equal(t, 9, part.MinStockLevel)
}

func TestAddAlwaysCreatesNewEntry(t *testing.T) {
	svc, _ := newTestService(t, newTestKV(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Add(ctx, invdomain.CreateRequest{Name: "Oil Filter", StockQuantity: 5})
	require.NoError(t, err)
	_, err = svc.Add(ctx, invdomain.CreateRequest{Name: "oil filter", StockQuantity: 7})
	require.NoError(t, err)

	assert.Len(t, svc.Parts(), 2)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc, fake := newTestService(t, newTestKV(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	part, err := svc.Add(ctx, invdomain.CreateRequest{Name: "Battery", Price: 100, StockQuantity: 4})
	require.NoError(t, err)

	fake.Advance(time.Hour)
	price := 150.0
	updated, err := svc.Update(ctx, part.ID, invdomain.UpdateRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Battery", updated.Name)
	assert.Equal(t, 4, updated.OriginalQuantity)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc, _ := newTestService(t, newTestKV(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	name := "x"
	_, err := svc.Update(ctx, "missing", invdomain.UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, invdomain.ErrPartNotFound)
}

func TestDeleteRemovesEntryAndMissingIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t, newTestKV(t))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	part, err := svc.Add(ctx, invdomain.CreateRequest{Name: "Wipers", StockQuantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, part.ID))
	assert.Empty(t, svc.Parts())

	require.NoError(t, svc.Delete(ctx, "never-existed"))
}

type failingKV struct {
	store.KV
	fail bool
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.KV.Set(ctx, key, value)
}

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	kv := &failingKV{KV: newTestKV(t)}
	svc, _ := newTestService(t, kv)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	part, err := svc.Add(ctx, invdomain.CreateRequest{Name: "Oil Filter", StockQuantity: 5})
	require.NoError(t, err)

	kv.fail = true
	_, err = svc.Add(ctx, invdomain.CreateRequest{Name: "Coolant", StockQuantity: 1})
	require.Error(t, err)

	parts := svc.Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, part.ID, parts[0].ID)
}

func TestLoadAbsentKeyStartsEmpty(t *testing.T) {
	svc, _ := newTestService(t, newTestKV(t))
	require.NoError(t, svc.Load(context.Background()))
	assert.Empty(t, svc.Parts())
}

func TestLoadCorruptPayloadDegradesToEmpty(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.KeyParts, []byte(`{not json`)))

	svc, _ := newTestService(t, kv)
	err := svc.Load(ctx)
	require.Error(t, err)
	assert.Empty(t, svc.Parts())
}
