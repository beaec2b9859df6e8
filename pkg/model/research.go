package model

type Research struct {
	ResearchID  int64  `json:"researchId"`
	Lab         *Lab   `json:"lab,omitempty"`
	DoctorEmail string `json:"doctorEmail,omitempty"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}
