package model

const LabCategoryResearch = "research"

type LabInstructor struct {
	InstructorID    int64  `json:"instructorId"`
	InstructorName  string `json:"instructorName"`
	InstructorEmail string `json:"instructorEmail"`
}

type Lab struct {
	LabID         int64          `json:"labId"`
	LabName       string         `json:"labName"`
	Location      string         `json:"location"`
	Capacity      int            `json:"capacity"`
	RequiredLevel int            `json:"requiredLevel"`
	// LabCategory is only sent by newer backends; older ones mark research
	// labs by id alone.
	LabCategory   string         `json:"labCategory,omitempty"`
	Instructor    *LabInstructor `json:"instructor,omitempty"`
	EquipmentList []*Equipment   `json:"equipmentList,omitempty"`
}

// IsResearch reports whether the lab is doctor-restricted. Newer backends
// flag it with labCategory; older ones only mark it by a fixed id, so the
// caller supplies the configured legacy list.
func (l *Lab) IsResearch(legacyIDs []int64) bool {
	if l.LabCategory != "" {
		return l.LabCategory == LabCategoryResearch
	}
	for _, id := range legacyIDs {
		if l.LabID == id {
			return true
		}
	}
	return false
}

type LabReservation struct {
	LabReservationID int64  `json:"labReservationId"`
	Lab              *Lab   `json:"lab,omitempty"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Purpose          string `json:"purpose"`
	Status           string `json:"status"`
}

type CreateLabReservationRequest struct {
	LabID     int64  `json:"labId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
}
