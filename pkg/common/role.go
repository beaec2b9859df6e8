package common

type Role string

const (
	Student    Role = "student"
	Instructor Role = "instructor"
	Technician Role = "technician"
	Doctor     Role = "doctor"
)

func (r Role) Valid() bool {
	switch r {
	case Student, Instructor, Technician, Doctor:
		return true
	}
	return false
}

type Perm string

const (
	ReserveEquipment Perm = "reserve_equipment"
	ReserveLab       Perm = "reserve_lab"
	ShareTools       Perm = "share_tools"
	ApproveBooking   Perm = "approve_booking"
	ManageEquipment  Perm = "manage_equipment"
	RunMaintenance   Perm = "run_maintenance"
	ViewResearch     Perm = "view_research"
)

var rolePerms = map[Role][]Perm{
	Student:    {ReserveEquipment, ShareTools},
	Instructor: {ApproveBooking, ManageEquipment},
	Technician: {RunMaintenance},
	Doctor:     {ReserveLab, ViewResearch},
}

func (r Role) Allowed(p Perm) bool {
	for _, perm := range rolePerms[r] {
		if perm == p {
			return true
		}
	}
	return false
}
