package common

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{Student, Instructor, Technician, Doctor} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "admin", "STUDENT"} {
		if r.Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role Role
		perm Perm
		want bool
	}{
		{Student, ReserveEquipment, true},
		{Student, ShareTools, true},
		{Student, ApproveBooking, false},
		{Instructor, ApproveBooking, true},
		{Instructor, ManageEquipment, true},
		{Instructor, ReserveLab, false},
		{Technician, RunMaintenance, true},
		{Technician, ReserveEquipment, false},
		{Doctor, ReserveLab, true},
		{Doctor, ViewResearch, true},
		{Doctor, RunMaintenance, false},
	}

	for _, tc := range cases {
		if got := tc.role.Allowed(tc.perm); got != tc.want {
			t.Errorf("%s.Allowed(%s) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}
