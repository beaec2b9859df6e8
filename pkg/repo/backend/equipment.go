package backend

import (
	// 外部依赖
	"context"
	"fmt"
	"net/url"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type equipmentImpl struct {
	t *Transport
}

func NewEquipment(t *Transport) repo.Equipment {
	return &equipmentImpl{t: t}
}

func (e *equipmentImpl) List(ctx context.Context) ([]*model.Equipment, error) {
	list := make([]*model.Equipment, 0)
	if err := e.t.Get(ctx, "/equipment", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (e *equipmentImpl) ByLab(ctx context.Context, labID int64) ([]*model.Equipment, error) {
	list := make([]*model.Equipment, 0)
	if err := e.t.Get(ctx, fmt.Sprintf("/equipment/lab/%d", labID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (e *equipmentImpl) Create(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error) {
	created := &model.Equipment{}
	if err := e.t.Post(ctx, "/equipment", req, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStatus is keyed by name: equipment has no numeric id.
func (e *equipmentImpl) UpdateStatus(ctx context.Context, equipmentName, status string) error {
	path := fmt.Sprintf("/equipment/%s/status", url.PathEscape(equipmentName))
	return e.t.Put(ctx, path, &model.UpdateEquipmentStatusRequest{Status: status}, nil)
}
