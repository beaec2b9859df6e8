package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type Research interface {
	List(ctx context.Context) ([]*model.Research, error)
}
