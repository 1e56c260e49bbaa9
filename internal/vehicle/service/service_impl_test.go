package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/store"
	vehicledomain "github.com/garagekit/garagekit/internal/vehicle/domain"
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

func TestAddAndGetByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	vehicle, err := svc.Add(ctx, vehicledomain.CreateRequest{
		Make:         "Toyota",
		Model:        "Camry",
		Year:         2022,
		VIN:          "4T1C11AK5NU123456",
		LicensePlate: "ABC-1234",
		CustomerName: "John Smith",
		Odometer:     26430,
	})
	require.NoError(t, err)

	got, ok := svc.GetByID(vehicle.ID)
	require.True(t, ok)
	assert.Equal(t, "Camry", got.Model)
}

func TestGetByIDDanglingReference(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Load(context.Background()))

	_, ok := svc.GetByID("deleted-long-ago")
	assert.False(t, ok)
}

func TestUpdateStampsUpdatedAtOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	vehicle, err := svc.Add(ctx, vehicledomain.CreateRequest{Make: "Honda", Model: "Civic", Year: 2021})
	require.NoError(t, err)

	odometer := 21000
	updated, err := svc.Update(ctx, vehicle.ID, vehicledomain.UpdateRequest{Odometer: &odometer})
	require.NoError(t, err)
	assert.Equal(t, 21000, updated.Odometer)
	assert.Equal(t, vehicle.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Honda", updated.Make)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	model := "x"
	_, err := svc.Update(ctx, "missing", vehicledomain.UpdateRequest{Model: &model})
	assert.ErrorIs(t, err, vehicledomain.ErrVehicleNotFound)
}
