package repo

import (
	"context"

	model "github.com/scienceol/labdesk/pkg/model"
)

type Labs interface {
	List(ctx context.Context) ([]*model.Lab, error)
	Available(ctx context.Context) ([]*model.Lab, error)
	ByInstructor(ctx context.Context, instructorID int64) ([]*model.Lab, error)
}

type LabReservations interface {
	ByDoctor(ctx context.Context, doctorID int64) ([]*model.LabReservation, error)
	CheckAvailability(ctx context.Context, labID int64, date, startTime, endTime string) (bool, error)
	Create(ctx context.Context, req *model.CreateLabReservationRequest) (*model.LabReservation, error)
}
