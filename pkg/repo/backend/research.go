package backend

import (
	// 外部依赖
	"context"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type researchImpl struct {
	t *Transport
}

func NewResearch(t *Transport) repo.Research {
	return &researchImpl{t: t}
}

func (r *researchImpl) List(ctx context.Context) ([]*model.Research, error) {
	list := make([]*model.Research, 0)
	if err := r.t.Get(ctx, "/research", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
