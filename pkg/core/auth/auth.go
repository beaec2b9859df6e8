package auth

import (
	"context"

	session "github.com/scienceol/labdesk/pkg/middleware/session"
)

type Service interface {
	Login(ctx context.Context, req *LoginReq) (*session.Identity, error)
	Register(ctx context.Context, req *RegisterReq) (*session.Identity, error)
	// Logout clears the local session only; the backend performs no
	// server-side invalidation for this client.
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Identity, error)
}
