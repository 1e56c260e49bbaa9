package domain

import "context"

// Service manages shop accounts and the current signed-in user.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (User, bool, error)
}
