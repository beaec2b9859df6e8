package research

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	dashboard "github.com/scienceol/labdesk/pkg/core/dashboard"
	core "github.com/scienceol/labdesk/pkg/core/research"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type researchImpl struct {
	sess      *session.Store
	research  repo.Research
	labs      repo.Labs
	equipment repo.Equipment

	now func() time.Time
}

func New(sess *session.Store, research repo.Research, labs repo.Labs, equipment repo.Equipment) core.Service {
	return &researchImpl{
		sess:      sess,
		research:  research,
		labs:      labs,
		equipment: equipment,
		now:       time.Now,
	}
}

func (r *researchImpl) Projects(ctx context.Context, search string) ([]*core.ProjectView, error) {
	user, err := r.requireDoctor()
	if err != nil {
		return nil, err
	}

	list, err := r.research.List(ctx)
	if err != nil {
		return nil, err
	}

	today := r.now()
	return utils.FilterSlice(list, func(res *model.Research) (*core.ProjectView, bool) {
		// ownership is an email match; the backend sends no doctor id link
		if res.DoctorEmail != user.Email {
			return nil, false
		}

		title := res.Title
		if title == "" {
			title = "Untitled Research"
		}
		labName := "Unknown Lab"
		if res.Lab != nil && res.Lab.LabName != "" {
			labName = res.Lab.LabName
		}

		view := &core.ProjectView{
			ID:        res.ResearchID,
			Title:     title,
			Principal: res.DoctorEmail,
			Lab:       labName,
			StartDate: res.StartDate,
			EndDate:   res.EndDate,
			Status:    core.DeriveStatus(today, res.StartDate, res.EndDate),
		}
		return view, dashboard.MatchesSearch(search, view.Title, view.Principal, view.Lab)
	}), nil
}

func (r *researchImpl) AdvancedEquipment(ctx context.Context) (*core.AdvancedEquipmentResp, error) {
	if _, err := r.requireDoctor(); err != nil {
		return nil, err
	}

	rows, err := r.equipment.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &core.AdvancedEquipmentResp{}
	resp.Equipment = utils.FilterSlice(rows, func(eq *model.Equipment) (*model.Equipment, bool) {
		if eq.StatusIs(model.EquipmentMaintenance) {
			resp.MaintenanceCount++
			return eq, true
		}
		return eq, eq.StatusIs(model.EquipmentAvailable)
	})

	return resp, nil
}

func (r *researchImpl) ResearchLabs(ctx context.Context) ([]*core.LabView, error) {
	if _, err := r.requireDoctor(); err != nil {
		return nil, err
	}

	labs, err := r.labs.List(ctx)
	if err != nil {
		return nil, err
	}

	legacyIDs := config.Dynamic().ResearchLabs.LegacyIDs
	return utils.FilterSlice(labs, func(lab *model.Lab) (*core.LabView, bool) {
		return &core.LabView{
			LabID:    lab.LabID,
			LabName:  lab.LabName,
			Location: lab.Location,
			Capacity: lab.Capacity,
		}, lab.IsResearch(legacyIDs)
	}), nil
}

func (r *researchImpl) requireDoctor() (*session.Identity, error) {
	user := r.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ViewResearch) {
		return nil, code.RoleDenied
	}
	return user, nil
}
