package model

// AuthResponse is the shape returned by every /auth endpoint. Exactly one of
// the role id fields is populated depending on which registration was hit.
type AuthResponse struct {
	Token        string `json:"token"`
	StudentID    int64  `json:"studentId,omitempty"`
	InstructorID int64  `json:"instructorId,omitempty"`
	TechnicianID int64  `json:"technicianId,omitempty"`
	DoctorID     int64  `json:"doctorId,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Message      string `json:"message"`
}

// RoleID picks whichever role-specific id the backend populated.
func (a *AuthResponse) RoleID() int64 {
	for _, id := range []int64{a.StudentID, a.InstructorID, a.TechnicianID, a.DoctorID} {
		if id != 0 {
			return id
		}
	}
	return 0
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	StudentID    int64  `json:"studentId,omitempty"`
	InstructorID int64  `json:"instructorId,omitempty"`
	TechnicianID int64  `json:"technicianId,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}
