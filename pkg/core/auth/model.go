package auth

import (
	common "github.com/scienceol/labdesk/pkg/common"
)

type LoginReq struct {
	Email    string
	Password string
}

type RegisterReq struct {
	Role     common.Role
	RoleID   int64 // studentId / instructorId / technicianId; unused for doctors
	Name     string
	Email    string
	Password string
}
