package model

const (
	ReservationPending  = "PENDING"
	ReservationApproved = "APPROVED"
	ReservationRejected = "REJECTED"
)

type ReservationStudent struct {
	StudentID int64  `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type Reservation struct {
	ReservationID   int64               `json:"reservationId"`
	Equipment       *Equipment          `json:"equipment,omitempty"`
	Student         *ReservationStudent `json:"student,omitempty"`
	Date            string              `json:"date"`
	Time            string              `json:"time"`     // start, HH:mm
	Duration        int                 `json:"duration"` // minutes; end is derived
	Purpose         string              `json:"purpose"`
	ReservationType string              `json:"reservationType"`
	TeamSize        int                 `json:"teamSize"`
	Status          string              `json:"status"`
}

type CreateReservationRequest struct {
	EquipmentName   string `json:"equipmentName"`
	StudentID       int64  `json:"studentId"`
	SupervisorID    int64  `json:"supervisorId,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        int    `json:"duration"`
	Purpose         string `json:"purpose"`
	ReservationType string `json:"reservationType"`
	TeamSize        int    `json:"teamSize"`
}
