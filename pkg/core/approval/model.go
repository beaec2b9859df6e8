package approval

import (
	model "github.com/scienceol/labdesk/pkg/model"
)

type OverviewResp struct {
	MyLabs  []*model.Lab
	Pending []*model.Reservation
}

type AddEquipmentReq struct {
	EquipmentName string
	Status        string
	LabID         int64
}
