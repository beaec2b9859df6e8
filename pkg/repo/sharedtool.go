package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type SharedTools interface {
	List(ctx context.Context) ([]*model.SharedTool, error)
	ByOwner(ctx context.Context, studentID int64) ([]*model.SharedTool, error)
	Create(ctx context.Context, req *model.CreateSharedToolRequest) (*model.SharedTool, error)
	Delete(ctx context.Context, toolID, ownerStudentID int64) error
}
