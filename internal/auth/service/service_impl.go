package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	authdomain "github.com/garagekit/garagekit/internal/auth/domain"
	"github.com/garagekit/garagekit/internal/auth/password"
	"github.com/garagekit/garagekit/internal/clock"
	"github.com/garagekit/garagekit/internal/store"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	KV    store.KV
	Log   *zap.Logger
	Clock clock.Clock
}

// Service stores accounts as a single collection and the signed-in user
// under its own key, so signing out is a plain delete.
type Service struct {
	kv    store.KV
	log   *zap.Logger
	clock clock.Clock
}

func New(p Params) authdomain.Service {
	return &Service{
		kv:    p.KV,
		log:   p.Log.Named("auth.service"),
		clock: p.Clock,
	}
}

func (s *Service) Signup(ctx context.Context, req authdomain.SignupRequest) (authdomain.User, error) {
	if err := req.Validate(); err != nil {
		return authdomain.User{}, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return authdomain.User{}, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return authdomain.User{}, authdomain.ErrUserExists
		}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return authdomain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := authdomain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return authdomain.User{}, err
	}
	if err := s.setCurrent(ctx, user); err != nil {
		return authdomain.User{}, err
	}
	s.log.Info("account created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, pass string) (authdomain.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return authdomain.User{}, err
	}

	email = strings.TrimSpace(email)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			if !password.Verify(pass, u.PasswordHash) {
				return authdomain.User{}, authdomain.ErrInvalidCredentials
			}
			if err := s.setCurrent(ctx, u); err != nil {
				return authdomain.User{}, err
			}
			return u, nil
		}
	}
	return authdomain.User{}, authdomain.ErrInvalidCredentials
}

func (s *Service) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, store.KeyAuthUser)
}

func (s *Service) CurrentUser(ctx context.Context) (authdomain.User, bool, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyAuthUser)
	if err != nil {
		return authdomain.User{}, false, fmt.Errorf("load current user: %w", err)
	}
	if !ok {
		return authdomain.User{}, false, nil
	}
	var user authdomain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return authdomain.User{}, false, fmt.Errorf("decode current user: %w", err)
	}
	return user, true, nil
}

func (s *Service) loadUsers(ctx context.Context) ([]authdomain.User, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []authdomain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users []authdomain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyUsers, raw); err != nil {
		s.log.Error("save users failed", zap.Error(err))
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (s *Service) setCurrent(ctx context.Context, user authdomain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyAuthUser, raw); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}
