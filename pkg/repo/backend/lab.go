package backend

import (
	// 外部依赖
	"context"
	"fmt"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type labImpl struct {
	t *Transport
}

func NewLabs(t *Transport) repo.Labs {
	return &labImpl{t: t}
}

func (l *labImpl) List(ctx context.Context) ([]*model.Lab, error) {
	labs := make([]*model.Lab, 0)
	if err := l.t.Get(ctx, "/labs", nil, &labs); err != nil {
		return nil, err
	}
	return labs, nil
}

func (l *labImpl) Available(ctx context.Context) ([]*model.Lab, error) {
	labs := make([]*model.Lab, 0)
	if err := l.t.Get(ctx, "/labs/available", nil, &labs); err != nil {
		return nil, err
	}
	return labs, nil
}

func (l *labImpl) ByInstructor(ctx context.Context, instructorID int64) ([]*model.Lab, error) {
	labs := make([]*model.Lab, 0)
	if err := l.t.Get(ctx, fmt.Sprintf("/labs/instructor/%d", instructorID), nil, &labs); err != nil {
		return nil, err
	}
	return labs, nil
}

type labReservationImpl struct {
	t *Transport
}

func NewLabReservations(t *Transport) repo.LabReservations {
	return &labReservationImpl{t: t}
}

func (l *labReservationImpl) ByDoctor(ctx context.Context, doctorID int64) ([]*model.LabReservation, error) {
	list := make([]*model.LabReservation, 0)
	if err := l.t.Get(ctx, fmt.Sprintf("/lab-reservations/doctor/%d", doctorID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *labReservationImpl) CheckAvailability(ctx context.Context, labID int64, date, startTime, endTime string) (bool, error) {
	free := false
	err := l.t.Get(ctx, "/lab-reservations/check-availability", map[string]string{
		"labId":     fmt.Sprintf("%d", labID),
		"date":      date,
		"startTime": startTime,
		"endTime":   endTime,
	}, &free)
	if err != nil {
		return false, err
	}
	return free, nil
}

func (l *labReservationImpl) Create(ctx context.Context, req *model.CreateLabReservationRequest) (*model.LabReservation, error) {
	created := &model.LabReservation{}
	if err := l.t.Post(ctx, "/lab-reservations", req, created); err != nil {
		return nil, err
	}
	return created, nil
}
