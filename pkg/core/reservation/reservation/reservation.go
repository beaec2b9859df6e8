package reservation

import (
	// 外部依赖
	"context"
	"encoding/json"
	"strings"

	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/reservation"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type reservationImpl struct {
	sess         *session.Store
	reservations repo.Reservations
	labResv      repo.LabReservations
	labs         repo.Labs
}

func New(sess *session.Store, reservations repo.Reservations, labResv repo.LabReservations, labs repo.Labs) core.Service {
	return &reservationImpl{
		sess:         sess,
		reservations: reservations,
		labResv:      labResv,
		labs:         labs,
	}
}

// ReserveEquipment 业务实现：
// - 本地校验时间窗（不发请求）
// - 向后端做可用性预检查
// - 以 duration 提交预约
// - 成功后重新拉取本人预约列表
func (r *reservationImpl) ReserveEquipment(ctx context.Context, req *core.ReserveEquipmentReq) (*core.ReserveEquipmentResp, error) {
	user := r.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ReserveEquipment) {
		return nil, code.RoleDenied
	}

	duration, err := core.ValidateWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	free, err := r.reservations.CheckAvailability(ctx, req.EquipmentName, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, code.NotAvailable
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = "General use"
	}
	teamSize := req.TeamSize
	if teamSize <= 0 {
		teamSize = 1
	}

	created, err := r.reservations.Create(ctx, &model.CreateReservationRequest{
		EquipmentName:   req.EquipmentName,
		StudentID:       user.ID,
		Date:            req.Date,
		Time:            req.StartTime,
		Duration:        duration,
		Purpose:         purpose,
		ReservationType: "EQUIPMENT",
		TeamSize:        teamSize,
	})
	if err != nil {
		logger.Errorf(ctx, "CreateReservation err: %+v equipment: %s", err, req.EquipmentName)
		return nil, err
	}

	mine, err := r.MyReservations(ctx)
	if err != nil {
		// the reservation went through; the refetch failing only costs
		// the fresh listing
		logger.Warnf(ctx, "refetch reservations err: %+v", err)
		mine = nil
	}

	return &core.ReserveEquipmentResp{
		ReservationID:  created.ReservationID,
		Message:        "Reservation submitted successfully. It is pending approval.",
		MyReservations: mine,
	}, nil
}

func (r *reservationImpl) MyReservations(ctx context.Context) ([]*core.ReservationView, error) {
	user := r.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}

	list, err := r.reservations.ByStudent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := utils.FilterSlice(list, func(res *model.Reservation) (*core.ReservationView, bool) {
		return toView(res), true
	})
	return views, nil
}

// toView derives the display end time from start + duration; the backend
// never stores an end time for equipment reservations.
func toView(res *model.Reservation) *core.ReservationView {
	start := res.Time
	if start == "" {
		start = "00:00"
	}
	duration := res.Duration
	if duration <= 0 {
		duration = 60
	}

	endClock := ""
	if startMin, err := utils.ClockMinutes(start); err == nil {
		endClock = utils.MinutesClock(startMin + duration)
	}

	name := "Unknown"
	if res.Equipment != nil && res.Equipment.EquipmentName != "" {
		name = res.Equipment.EquipmentName
	}

	status := strings.ToLower(res.Status)
	if status == "" {
		status = "pending"
	}

	return &core.ReservationView{
		ID:            res.ReservationID,
		EquipmentName: name,
		Date:          res.Date,
		StartTime:     start,
		EndTime:       endClock,
		Duration:      duration,
		Status:        status,
	}
}

// ReserveLab 博士实验室预约：显式提交起止时间
func (r *reservationImpl) ReserveLab(ctx context.Context, req *core.ReserveLabReq) (*core.ReserveLabResp, error) {
	user := r.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ReserveLab) {
		return nil, code.RoleDenied
	}

	if _, err := core.ValidateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	lab, err := r.findLab(ctx, req.LabID)
	if err != nil {
		return nil, err
	}
	if lab.IsResearch(config.Dynamic().ResearchLabs.LegacyIDs) && user.Role != common.Doctor {
		return nil, code.ResearchLabRestrict
	}

	free, err := r.labResv.CheckAvailability(ctx, req.LabID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, code.NotAvailable
	}

	created, err := r.labResv.Create(ctx, &model.CreateLabReservationRequest{
		LabID:     req.LabID,
		DoctorID:  user.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
	})
	if err != nil {
		logger.Errorf(ctx, "CreateLabReservation err: %+v lab: %d", err, req.LabID)
		return nil, err
	}

	return &core.ReserveLabResp{
		LabReservationID: created.LabReservationID,
		Message:          "Lab reservation submitted successfully.",
	}, nil
}

func (r *reservationImpl) MyLabReservations(ctx context.Context) ([]*core.LabReservationView, error) {
	user := r.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}

	list, err := r.labResv.ByDoctor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return utils.FilterSlice(list, func(lr *model.LabReservation) (*core.LabReservationView, bool) {
		labName := "Unknown Lab"
		if lr.Lab != nil && lr.Lab.LabName != "" {
			labName = lr.Lab.LabName
		}
		return &core.LabReservationView{
			ID:        lr.LabReservationID,
			LabName:   labName,
			Date:      lr.Date,
			StartTime: lr.StartTime,
			EndTime:   lr.EndTime,
			Status:    lr.Status,
		}, true
	}), nil
}

func (r *reservationImpl) TakeSelectedEquipment(_ context.Context) (string, bool) {
	raw, ok := r.sess.TakeHandoff(session.KeySelectedEquipment)
	if !ok {
		return "", false
	}
	handoff := struct {
		Name string `json:"name"`
	}{}
	if err := json.Unmarshal([]byte(raw), &handoff); err != nil || handoff.Name == "" {
		return "", false
	}
	return handoff.Name, true
}

func (r *reservationImpl) findLab(ctx context.Context, labID int64) (*model.Lab, error) {
	labs, err := r.labs.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, lab := range labs {
		if lab.LabID == labID {
			return lab, nil
		}
	}
	return nil, code.LabNotFound
}
