package auth

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/auth"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type authImpl struct {
	sess *session.Store
	auth repo.Auth
}

func New(sess *session.Store, auth repo.Auth) core.Service {
	return &authImpl{sess: sess, auth: auth}
}

func (a *authImpl) Login(ctx context.Context, req *core.LoginReq) (*session.Identity, error) {
	_, err := a.auth.Login(ctx, &model.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Errorf(ctx, "Login err: %+v email: %s", err, req.Email)
		return nil, err
	}

	return a.Current(ctx)
}

func (a *authImpl) Register(ctx context.Context, req *core.RegisterReq) (*session.Identity, error) {
	if !req.Role.Valid() {
		return nil, code.RegisterErr.WithMsgf("unknown role %q", req.Role)
	}

	body := &model.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	var err error
	switch req.Role {
	case common.Student:
		body.StudentID = req.RoleID
		_, err = a.auth.Register(ctx, body)
	case common.Instructor:
		body.InstructorID = req.RoleID
		_, err = a.auth.RegisterInstructor(ctx, body)
	case common.Technician:
		body.TechnicianID = req.RoleID
		_, err = a.auth.RegisterTechnician(ctx, body)
	case common.Doctor:
		_, err = a.auth.RegisterDoctor(ctx, body)
	}
	if err != nil {
		logger.Errorf(ctx, "Register err: %+v role: %s", err, req.Role)
		return nil, err
	}

	return a.Current(ctx)
}

func (a *authImpl) Logout(_ context.Context) error {
	return a.sess.Clear()
}

func (a *authImpl) Current(_ context.Context) (*session.Identity, error) {
	user := a.sess.Identity()
	if user == nil || a.sess.Token() == "" {
		return nil, code.UnLogin
	}
	return user, nil
}
