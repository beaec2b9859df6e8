package reservation

// School hours bound every reservation window.
const (
	SchoolOpenMinutes  = 8 * 60  // 08:00
	SchoolCloseMinutes = 18 * 60 // 18:00
)

type ReserveEquipmentReq struct {
	EquipmentName string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:mm
	EndTime       string // HH:mm
	Purpose       string
	TeamSize      int
}

type ReserveEquipmentResp struct {
	ReservationID  int64
	Message        string
	MyReservations []*ReservationView
}

// ReservationView is the display shape: end time is re-derived from
// start + duration, status lower-cased.
type ReservationView struct {
	ID            int64
	EquipmentName string
	Date          string
	StartTime     string
	EndTime       string
	Duration      int
	Status        string
}

type ReserveLabReq struct {
	LabID     int64
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
}

type ReserveLabResp struct {
	LabReservationID int64
	Message          string
}

type LabReservationView struct {
	ID        int64
	LabName   string
	Date      string
	StartTime string
	EndTime   string
	Status    string
}
