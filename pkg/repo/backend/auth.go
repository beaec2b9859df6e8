package backend

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type authImpl struct {
	t *Transport
}

func NewAuth(t *Transport) repo.Auth {
	return &authImpl{t: t}
}

func (a *authImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/login", req, code.LoginErr)
}

func (a *authImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/register", req, code.RegisterErr)
}

func (a *authImpl) RegisterInstructor(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/register/instructor", req, code.RegisterErr)
}

func (a *authImpl) RegisterTechnician(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/register/technician", req, code.RegisterErr)
}

func (a *authImpl) RegisterDoctor(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/register/doctor", req, code.RegisterErr)
}

// authenticate posts credentials and, on success, installs the returned
// token and identity into the session store.
func (a *authImpl) authenticate(ctx context.Context, path string, body any, fallback *code.Code) (*model.AuthResponse, error) {
	resData := &model.AuthResponse{}
	if err := a.t.Post(ctx, path, body, resData); err != nil {
		return nil, err
	}
	if resData.Token == "" {
		logger.Errorf(ctx, "authenticate %s: empty token in response", path)
		return nil, fallback
	}

	if err := a.t.sess.SetToken(resData.Token); err != nil {
		return nil, err
	}
	if err := a.t.sess.SetIdentity(&session.Identity{
		ID:    resData.RoleID(),
		Name:  resData.Name,
		Email: resData.Email,
		Role:  common.Role(resData.Role),
	}); err != nil {
		return nil, err
	}

	return resData, nil
}
