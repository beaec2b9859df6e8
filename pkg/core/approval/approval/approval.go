package approval

import (
	// 外部依赖
	"context"
	"sync"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/approval"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type approvalImpl struct {
	sess      *session.Store
	labs      repo.Labs
	resv      repo.Reservations
	equipment repo.Equipment
}

func New(sess *session.Store, labs repo.Labs, resv repo.Reservations, equipment repo.Equipment) core.Service {
	return &approvalImpl{
		sess:      sess,
		labs:      labs,
		resv:      resv,
		equipment: equipment,
	}
}

func (a *approvalImpl) Overview(ctx context.Context) (*core.OverviewResp, error) {
	user := a.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ApproveBooking) {
		return nil, code.RoleDenied
	}

	resp := &core.OverviewResp{}
	wg := sync.WaitGroup{}
	wg.Add(2)

	utils.SafelyGo(func() {
		defer wg.Done()
		labs, err := a.labs.ByInstructor(ctx, user.ID)
		if err != nil {
			logger.Warnf(ctx, "fetch instructor labs err: %+v", err)
			return
		}
		resp.MyLabs = labs
	}, func(err error) {
		logger.Warnf(ctx, "fetch instructor labs err: %+v", err)
	})

	utils.SafelyGo(func() {
		defer wg.Done()
		pending, err := a.pendingQueue(ctx)
		if err != nil {
			logger.Warnf(ctx, "fetch pending reservations err: %+v", err)
			return
		}
		resp.Pending = pending
	}, func(err error) {
		logger.Warnf(ctx, "fetch pending reservations err: %+v", err)
	})

	wg.Wait()
	return resp, nil
}

// pendingQueue prefers the dedicated endpoint and falls back to filtering
// the full collection on backends that do not serve it.
func (a *approvalImpl) pendingQueue(ctx context.Context) ([]*model.Reservation, error) {
	if pending, err := a.resv.Pending(ctx); err == nil {
		return pending, nil
	}

	all, err := a.resv.List(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterSlice(all, func(res *model.Reservation) (*model.Reservation, bool) {
		return res, res.Status == model.ReservationPending
	}), nil
}

func (a *approvalImpl) Approve(ctx context.Context, reservationID int64) (*core.OverviewResp, error) {
	return a.decide(ctx, reservationID, a.resv.Approve)
}

func (a *approvalImpl) Reject(ctx context.Context, reservationID int64) (*core.OverviewResp, error) {
	return a.decide(ctx, reservationID, a.resv.Reject)
}

func (a *approvalImpl) decide(ctx context.Context, reservationID int64, action func(context.Context, int64) error) (*core.OverviewResp, error) {
	user := a.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ApproveBooking) {
		return nil, code.RoleDenied
	}

	if err := action(ctx, reservationID); err != nil {
		logger.Errorf(ctx, "reservation decision err: %+v id: %d", err, reservationID)
		return nil, err
	}

	return a.Overview(ctx)
}

func (a *approvalImpl) AddEquipment(ctx context.Context, req *core.AddEquipmentReq) error {
	user := a.sess.Identity()
	if user == nil {
		return code.UnLogin
	}
	if !user.Role.Allowed(common.ManageEquipment) {
		return code.RoleDenied
	}

	status := req.Status
	if status == "" {
		status = model.EquipmentAvailable
	}

	_, err := a.equipment.Create(ctx, &model.CreateEquipmentRequest{
		EquipmentName: req.EquipmentName,
		Status:        status,
		LabID:         req.LabID,
	})
	return err
}

func (a *approvalImpl) SetEquipmentStatus(ctx context.Context, equipmentName, status string) error {
	user := a.sess.Identity()
	if user == nil {
		return code.UnLogin
	}
	if !user.Role.Allowed(common.ManageEquipment) {
		return code.RoleDenied
	}

	return a.equipment.UpdateStatus(ctx, equipmentName, status)
}
