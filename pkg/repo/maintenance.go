package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type Maintenance interface {
	List(ctx context.Context) ([]*model.MaintenanceRequest, error)
	ByTechnician(ctx context.Context, technicianID int64) ([]*model.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, maintenanceID int64, status string) error
}
