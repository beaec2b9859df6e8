package maintenance

import (
	model "github.com/scienceol/labdesk/pkg/model"
)

type QueueResp struct {
	Requests   []*model.MaintenanceRequest
	Pending    int
	InProgress int
	Completed  int
}

// ValidTransition encodes the only legal maintenance moves:
// PENDING -> IN_PROGRESS -> COMPLETED.
func ValidTransition(from, to string) bool {
	switch from {
	case model.MaintenancePending:
		return to == model.MaintenanceInProgress
	case model.MaintenanceInProgress:
		return to == model.MaintenanceCompleted
	}
	return false
}
