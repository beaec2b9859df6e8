package model

const (
	MaintenancePending    = "PENDING"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceCompleted  = "COMPLETED"
)

type MaintenanceTechnician struct {
	TechnicianID int64  `json:"technicianId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

type MaintenanceRequest struct {
	MaintenanceID           int64                  `json:"maintenanceId"`
	Technician              *MaintenanceTechnician `json:"technician,omitempty"`
	Equipment               *Equipment             `json:"equipment,omitempty"`
	RequestDate             string                 `json:"requestDate"`
	Status                  string                 `json:"status"`
	Description             string                 `json:"description"`
	NextMaintenanceDate     string                 `json:"nextMaintenanceDate,omitempty"`
	MaintenanceFrequencyDay int                    `json:"maintenanceFrequencyDays,omitempty"`
	EstimatedDurationHours  int                    `json:"estimatedDurationHours,omitempty"`
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status"`
}
