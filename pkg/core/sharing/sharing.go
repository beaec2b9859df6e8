package sharing

import (
	"context"
)

type Service interface {
	Browse(ctx context.Context, req *BrowseReq) ([]*ToolView, error)
	Create(ctx context.Context, req *CreateReq) (*ToolView, error)
	// Delete enforces ownership locally before any request is issued; a
	// non-owner never silently succeeds.
	Delete(ctx context.Context, toolID int64) error
}
