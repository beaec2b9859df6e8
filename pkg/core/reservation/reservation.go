package reservation

import (
	"context"
)

type Service interface {
	// ReserveEquipment runs the full student workflow: local window
	// validation, availability pre-check, submission, refetch.
	ReserveEquipment(ctx context.Context, req *ReserveEquipmentReq) (*ReserveEquipmentResp, error)
	MyReservations(ctx context.Context) ([]*ReservationView, error)

	// ReserveLab is the doctor variant: end time is stored explicitly,
	// not derived from a duration.
	ReserveLab(ctx context.Context, req *ReserveLabReq) (*ReserveLabResp, error)
	MyLabReservations(ctx context.Context) ([]*LabReservationView, error)

	// TakeSelectedEquipment consumes the one-shot handoff written by the
	// lab browser, if any.
	TakeSelectedEquipment(ctx context.Context) (string, bool)
}
