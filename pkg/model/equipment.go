package model

import "strings"

// Equipment has no numeric id: equipmentName is the natural key and every
// lookup or status update is keyed by it.
type Equipment struct {
	EquipmentName string `json:"equipmentName"`
	Status        string `json:"status"`
	Lab           *Lab   `json:"lab,omitempty"`
}

const (
	EquipmentAvailable   = "AVAILABLE"
	EquipmentUnavailable = "UNAVAILABLE"
	EquipmentMaintenance = "MAINTENANCE"
)

// StatusIs compares case-insensitively; backends have been observed sending
// both "Available" and "AVAILABLE".
func (e *Equipment) StatusIs(status string) bool {
	return strings.EqualFold(e.Status, status)
}

type CreateEquipmentRequest struct {
	EquipmentName string `json:"equipmentName"`
	Status        string `json:"status"`
	LabID         int64  `json:"labId"`
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status"`
}
