package backend

import (
	// 外部依赖
	"context"
	"fmt"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type sharedToolImpl struct {
	t *Transport
}

func NewSharedTools(t *Transport) repo.SharedTools {
	return &sharedToolImpl{t: t}
}

func (s *sharedToolImpl) List(ctx context.Context) ([]*model.SharedTool, error) {
	list := make([]*model.SharedTool, 0)
	if err := s.t.Get(ctx, "/shared-tools", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *sharedToolImpl) ByOwner(ctx context.Context, studentID int64) ([]*model.SharedTool, error) {
	list := make([]*model.SharedTool, 0)
	if err := s.t.Get(ctx, fmt.Sprintf("/shared-tools/owner/%d", studentID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *sharedToolImpl) Create(ctx context.Context, req *model.CreateSharedToolRequest) (*model.SharedTool, error) {
	created := &model.SharedTool{}
	if err := s.t.Post(ctx, "/shared-tools", req, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *sharedToolImpl) Delete(ctx context.Context, toolID, ownerStudentID int64) error {
	return s.t.Delete(ctx, fmt.Sprintf("/shared-tools/%d", toolID), map[string]string{
		"ownerStudentId": fmt.Sprintf("%d", ownerStudentID),
	})
}
