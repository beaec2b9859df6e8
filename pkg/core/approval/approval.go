package approval

import (
	"context"
)

type Service interface {
	// Overview joins the instructor's labs and the pending reservation
	// queue; a failed fetch degrades to empty.
	Overview(ctx context.Context) (*OverviewResp, error)

	// Approve / Reject are fire-and-forget: on success the queue is
	// refetched rather than patched optimistically.
	Approve(ctx context.Context, reservationID int64) (*OverviewResp, error)
	Reject(ctx context.Context, reservationID int64) (*OverviewResp, error)

	AddEquipment(ctx context.Context, req *AddEquipmentReq) error
	SetEquipmentStatus(ctx context.Context, equipmentName, status string) error
}
