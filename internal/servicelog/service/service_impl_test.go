package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	svcdomain "github.com/garagekit/garagekit/internal/servicelog/domain"
	"github.com/garagekit/garagekit/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	kv, err := store.NewSQLite(db)
	require.NoError(t, err)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		KV:    kv,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)),
		GenID: node,
	})
	return svc.(*Service)
}

func TestAddStoresSubmittedTotalVerbatim(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	// deliberately inconsistent with parts + labor; the core must not
	// recompute it
	record, err := svc.Add(ctx, svcdomain.CreateRequest{
		VehicleID:  "v1",
		Date:       "2025-01-09",
		LaborHours: 2,
		LaborRate:  100,
		Parts: []svcdomain.ServicePart{
			{PartName: "Oil Filter", Quantity: 1, UnitPrice: 25, TotalPrice: 25},
		},
		TotalCost: 999,
		Status:    svcdomain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 999.0, record.TotalCost)
	assert.NotEmpty(t, record.ID)
}

func TestAddCopiesPartsSlice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	parts := []svcdomain.ServicePart{{PartName: "Coolant", Quantity: 1, UnitPrice: 30, TotalPrice: 30}}
	record, err := svc.Add(ctx, svcdomain.CreateRequest{VehicleID: "v1", Date: "2025-01-09", Parts: parts})
	require.NoError(t, err)

	parts[0].Quantity = 99
	assert.Equal(t, 1, record.Parts[0].Quantity)
	assert.Equal(t, 1, svc.Records()[0].Parts[0].Quantity)
}

func TestByVehicleFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Add(ctx, svcdomain.CreateRequest{VehicleID: "v1", Date: "2025-01-01"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, svcdomain.CreateRequest{VehicleID: "v2", Date: "2025-01-02"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, svcdomain.CreateRequest{VehicleID: "v1", Date: "2025-01-03"})
	require.NoError(t, err)

	out := svc.ByVehicle("v1")
	require.Len(t, out, 2)
	for _, record := range out {
		assert.Equal(t, "v1", record.VehicleID)
	}
	assert.Empty(t, svc.ByVehicle("dangling"))
}

func TestUpdateReplacesPartsWhenProvided(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	record, err := svc.Add(ctx, svcdomain.CreateRequest{
		VehicleID: "v1",
		Date:      "2025-01-05",
		Parts: []svcdomain.ServicePart{
			{PartName: "Battery - 12V", Quantity: 1, UnitPrice: 150, TotalPrice: 150},
		},
		Status: svcdomain.StatusInProgress,
	})
	require.NoError(t, err)

	status := svcdomain.StatusCompleted
	updated, err := svc.Update(ctx, record.ID, svcdomain.UpdateRequest{
		Status: &status,
		Parts: []svcdomain.ServicePart{
			{PartName: "Battery - 12V", Quantity: 1, UnitPrice: 150, TotalPrice: 150},
			{PartName: "Wipers", Quantity: 2, UnitPrice: 40, TotalPrice: 80},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, svcdomain.StatusCompleted, updated.Status)
	assert.Len(t, updated.Parts, 2)
	assert.Equal(t, "2025-01-05", updated.Date)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	notes := "x"
	_, err := svc.Update(ctx, "missing", svcdomain.UpdateRequest{Notes: &notes})
	assert.ErrorIs(t, err, svcdomain.ErrServiceNotFound)
}

func TestDanglingVehicleReferenceIsKept(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	record, err := svc.Add(ctx, svcdomain.CreateRequest{VehicleID: "gone-forever", Date: "2025-01-01"})
	require.NoError(t, err)

	records := svc.Records()
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, "gone-forever", records[0].VehicleID)
}
