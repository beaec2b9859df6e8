package backend

import (
	// 外部依赖
	"context"
	"fmt"

	// 内部引用
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
)

type reservationImpl struct {
	t *Transport
}

func NewReservations(t *Transport) repo.Reservations {
	return &reservationImpl{t: t}
}

func (r *reservationImpl) List(ctx context.Context) ([]*model.Reservation, error) {
	list := make([]*model.Reservation, 0)
	if err := r.t.Get(ctx, "/reservations", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *reservationImpl) Pending(ctx context.Context) ([]*model.Reservation, error) {
	list := make([]*model.Reservation, 0)
	if err := r.t.Get(ctx, "/reservations/pending", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *reservationImpl) ByStudent(ctx context.Context, studentID int64) ([]*model.Reservation, error) {
	list := make([]*model.Reservation, 0)
	if err := r.t.Get(ctx, fmt.Sprintf("/reservations/student/%d", studentID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *reservationImpl) CheckAvailability(ctx context.Context, equipmentName, date, startTime, endTime string) (bool, error) {
	free := false
	err := r.t.Get(ctx, "/reservations/check-availability", map[string]string{
		"equipmentName": equipmentName,
		"date":          date,
		"startTime":     startTime,
		"endTime":       endTime,
	}, &free)
	if err != nil {
		return false, err
	}
	return free, nil
}

func (r *reservationImpl) Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error) {
	created := &model.Reservation{}
	if err := r.t.Post(ctx, "/reservations", req, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *reservationImpl) Approve(ctx context.Context, reservationID int64) error {
	return r.t.Put(ctx, fmt.Sprintf("/reservations/%d/approve", reservationID), struct{}{}, nil)
}

func (r *reservationImpl) Reject(ctx context.Context, reservationID int64) error {
	return r.t.Put(ctx, fmt.Sprintf("/reservations/%d/reject", reservationID), struct{}{}, nil)
}
