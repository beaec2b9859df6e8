package maintenance

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/maintenance"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type maintenanceImpl struct {
	sess  *session.Store
	queue repo.Maintenance
}

func New(sess *session.Store, queue repo.Maintenance) core.Service {
	return &maintenanceImpl{sess: sess, queue: queue}
}

func (m *maintenanceImpl) Queue(ctx context.Context) (*core.QueueResp, error) {
	user := m.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.RunMaintenance) {
		return nil, code.RoleDenied
	}

	list, err := m.assignedQueue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := &core.QueueResp{Requests: list}
	for _, req := range list {
		switch req.Status {
		case model.MaintenancePending:
			resp.Pending++
		case model.MaintenanceInProgress:
			resp.InProgress++
		case model.MaintenanceCompleted:
			resp.Completed++
		}
	}

	return resp, nil
}

// assignedQueue prefers the technician-scoped endpoint and falls back to
// filtering the full collection on backends that do not serve it.
func (m *maintenanceImpl) assignedQueue(ctx context.Context, technicianID int64) ([]*model.MaintenanceRequest, error) {
	if list, err := m.queue.ByTechnician(ctx, technicianID); err == nil {
		return list, nil
	}

	all, err := m.queue.List(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterSlice(all, func(req *model.MaintenanceRequest) (*model.MaintenanceRequest, bool) {
		return req, req.Technician != nil && req.Technician.TechnicianID == technicianID
	}), nil
}

func (m *maintenanceImpl) Start(ctx context.Context, maintenanceID int64) (*core.QueueResp, error) {
	return m.transition(ctx, maintenanceID, model.MaintenanceInProgress)
}

func (m *maintenanceImpl) Complete(ctx context.Context, maintenanceID int64) (*core.QueueResp, error) {
	return m.transition(ctx, maintenanceID, model.MaintenanceCompleted)
}

// transition validates the move locally, issues it fire-and-forget, then
// refetches the whole queue.
func (m *maintenanceImpl) transition(ctx context.Context, maintenanceID int64, to string) (*core.QueueResp, error) {
	current, err := m.Queue(ctx)
	if err != nil {
		return nil, err
	}

	var target *model.MaintenanceRequest
	for _, req := range current.Requests {
		if req.MaintenanceID == maintenanceID {
			target = req
			break
		}
	}
	if target == nil {
		return nil, code.RecordNotFound
	}
	if !core.ValidTransition(target.Status, to) {
		return nil, code.BadTransition.WithMsgf("cannot move %s from %s to %s",
			targetName(target), target.Status, to)
	}

	if err := m.queue.UpdateStatus(ctx, maintenanceID, to); err != nil {
		logger.Errorf(ctx, "UpdateMaintenanceStatus err: %+v id: %d", err, maintenanceID)
		return nil, err
	}

	return m.Queue(ctx)
}

func targetName(req *model.MaintenanceRequest) string {
	if req.Equipment != nil && req.Equipment.EquipmentName != "" {
		return req.Equipment.EquipmentName
	}
	return "request"
}
