package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type Auth interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	RegisterInstructor(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	RegisterTechnician(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	RegisterDoctor(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
}
