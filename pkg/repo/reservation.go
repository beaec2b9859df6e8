package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type Reservations interface {
	List(ctx context.Context) ([]*model.Reservation, error)
	Pending(ctx context.Context) ([]*model.Reservation, error)
	ByStudent(ctx context.Context, studentID int64) ([]*model.Reservation, error)
	CheckAvailability(ctx context.Context, equipmentName, date, startTime, endTime string) (bool, error)
	Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error)
	Approve(ctx context.Context, reservationID int64) error
	Reject(ctx context.Context, reservationID int64) error
}
