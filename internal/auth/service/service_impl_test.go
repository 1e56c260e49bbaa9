package service

import (
	"context"
	"testing"
	"time"

	authdomain "github.com/garagekit/garagekit/internal/auth/domain"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) authdomain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	kv, err := store.NewSQLite(db)
	require.NoError(t, err)

	return New(Params{
		KV:    kv,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)),
	})
}

func TestSignupCreatesAndSignsIn(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, authdomain.SignupRequest{
		Email:    "Owner@Shop.example",
		Name:     "Shop Owner",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "owner@shop.example", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	current, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Signup(context.Background(), authdomain.SignupRequest{
		Email:    "a@b.example",
		Name:     "A",
		Password: "12345",
	})
	require.Error(t, err)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, authdomain.SignupRequest{Email: "a@b.example", Name: "A", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, authdomain.SignupRequest{Email: "A@B.example", Name: "A2", Password: "secret2"})
	assert.ErrorIs(t, err, authdomain.ErrUserExists)
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, authdomain.SignupRequest{Email: "a@b.example", Name: "A", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Login(ctx, "a@b.example", "wrong")
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	user, err := svc.Login(ctx, "a@b.example", "secret1")
	require.NoError(t, err)

	current, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@b.example", "secret1")
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLogoutClearsCurrentUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, authdomain.SignupRequest{Email: "a@b.example", Name: "A", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, ok, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// logging out while signed out is harmless
	require.NoError(t, svc.Logout(ctx))
}
