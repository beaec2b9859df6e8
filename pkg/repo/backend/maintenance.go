package backend

import (
	// 外部依赖
	"context"
	"fmt"

	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

// Backend builds disagree on the maintenance surface (/maintenance vs
// /maintenance-requests, PUT {id}/status vs POST {id}/complete), so both
// flavors are selectable through the dynamic config.
type maintenanceImpl struct {
	t *Transport
}

func NewMaintenance(t *Transport) repo.Maintenance {
	return &maintenanceImpl{t: t}
}

func (m *maintenanceImpl) base() string {
	return config.Dynamic().Endpoints.MaintenanceBase
}

func (m *maintenanceImpl) List(ctx context.Context) ([]*model.MaintenanceRequest, error) {
	list := make([]*model.MaintenanceRequest, 0)
	if err := m.t.Get(ctx, m.base(), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *maintenanceImpl) ByTechnician(ctx context.Context, technicianID int64) ([]*model.MaintenanceRequest, error) {
	list := make([]*model.MaintenanceRequest, 0)
	if err := m.t.Get(ctx, fmt.Sprintf("%s/technician/%d", m.base(), technicianID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *maintenanceImpl) UpdateStatus(ctx context.Context, maintenanceID int64, status string) error {
	if config.Dynamic().Endpoints.MaintenanceTransition == "complete" && status == model.MaintenanceCompleted {
		return m.t.Post(ctx, fmt.Sprintf("%s/%d/complete", m.base(), maintenanceID), struct{}{}, nil)
	}
	return m.t.Put(ctx, fmt.Sprintf("%s/%d/status", m.base(), maintenanceID),
		&model.UpdateMaintenanceStatusRequest{Status: status}, nil)
}
