package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

// Equipment is keyed by name throughout: the backend exposes no numeric id
// for equipment rows.
type Equipment interface {
	List(ctx context.Context) ([]*model.Equipment, error)
	ByLab(ctx context.Context, labID int64) ([]*model.Equipment, error)
	Create(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error)
	UpdateStatus(ctx context.Context, equipmentName, status string) error
}
