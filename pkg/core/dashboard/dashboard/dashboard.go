package dashboard

import (
	// 外部依赖
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	ants "github.com/panjf2000/ants/v2"

	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/dashboard"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type dashboardImpl struct {
	sess      *session.Store
	labs      repo.Labs
	equipment repo.Equipment
	resv      repo.Reservations
	tools     repo.SharedTools

	pool *ants.Pool

	// generation fences out stale joins: a load that finishes after a
	// newer one started is discarded instead of overwriting fresher state.
	generation atomic.Uint64
}

func New(sess *session.Store, labs repo.Labs, equipment repo.Equipment, resv repo.Reservations, tools repo.SharedTools) (core.Service, error) {
	pool, err := ants.NewPool(config.Global().Client.FetchWorkers)
	if err != nil {
		return nil, err
	}

	return &dashboardImpl{
		sess:      sess,
		labs:      labs,
		equipment: equipment,
		resv:      resv,
		tools:     tools,
		pool:      pool,
	}, nil
}

// Student 并发聚合：labs + available labs + 本人预约 + 本人共享工具。
// 任一失败降级为空集合，不让整个面板失败。
func (d *dashboardImpl) Student(ctx context.Context) (*core.StudentDashboard, error) {
	user := d.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}

	gen := d.generation.Add(1)

	var (
		allLabs       []*model.Lab
		availableLabs []*model.Lab
		reservations  []*model.Reservation
		tools         []*model.SharedTool
	)

	wg := sync.WaitGroup{}
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		submitErr := d.pool.Submit(func() {
			defer wg.Done()
			var fetchErr error
			// a panicking fetch degrades its section like a failed one
			if panicErr := utils.SafelyRun(func() { fetchErr = fn() }); panicErr != nil {
				fetchErr = panicErr
			}
			if fetchErr != nil {
				// partial data beats total failure
				logger.Warnf(ctx, "dashboard fetch %s err: %+v", name, fetchErr)
			}
		})
		if submitErr != nil {
			wg.Done()
			logger.Warnf(ctx, "dashboard submit %s err: %+v", name, submitErr)
		}
	}

	fetch("labs", func() error {
		var err error
		allLabs, err = d.labs.List(ctx)
		return err
	})
	fetch("available labs", func() error {
		var err error
		availableLabs, err = d.labs.Available(ctx)
		return err
	})
	fetch("reservations", func() error {
		var err error
		reservations, err = d.resv.ByStudent(ctx, user.ID)
		return err
	})
	fetch("shared tools", func() error {
		var err error
		tools, err = d.tools.ByOwner(ctx, user.ID)
		return err
	})

	wg.Wait()

	if d.generation.Load() != gen {
		return nil, code.StaleResult
	}

	board := &core.StudentDashboard{
		TotalLabs:      len(allLabs),
		AvailableLabs:  len(availableLabs),
		MyReservations: reservations,
		MySharedTools:  tools,
	}
	for _, res := range reservations {
		switch res.Status {
		case model.ReservationPending:
			board.PendingCount++
		case model.ReservationApproved:
			board.ApprovedCount++
		}
	}

	return board, nil
}

func (d *dashboardImpl) EquipmentCatalog(ctx context.Context, search string) ([]*core.EquipmentGroup, error) {
	rows, err := d.equipment.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := core.GroupEquipment(rows)
	return utils.FilterSlice(groups, func(g *core.EquipmentGroup) (*core.EquipmentGroup, bool) {
		return g, core.MatchesSearch(search, g.Name, g.Category, g.Lab)
	}), nil
}

func (d *dashboardImpl) Labs(ctx context.Context, search string) ([]*core.LabView, error) {
	labs, err := d.labs.List(ctx)
	if err != nil {
		return nil, err
	}

	legacyIDs := config.Dynamic().ResearchLabs.LegacyIDs
	return utils.FilterSlice(labs, func(lab *model.Lab) (*core.LabView, bool) {
		instructorName := ""
		if lab.Instructor != nil {
			instructorName = lab.Instructor.InstructorName
		}
		view := &core.LabView{
			LabID:          lab.LabID,
			LabName:        lab.LabName,
			Location:       lab.Location,
			Capacity:       lab.Capacity,
			RequiredLevel:  lab.RequiredLevel,
			InstructorName: instructorName,
			Research:       lab.IsResearch(legacyIDs),
		}
		return view, core.MatchesSearch(search, lab.LabName, lab.Location, instructorName)
	}), nil
}

func (d *dashboardImpl) LabEquipment(ctx context.Context, labID int64) ([]*core.EquipmentGroup, error) {
	rows, err := d.equipment.ByLab(ctx, labID)
	if err != nil {
		return nil, err
	}
	return core.GroupEquipment(rows), nil
}

// SelectEquipment writes the one-shot handoff consumed by the reservation
// form.
func (d *dashboardImpl) SelectEquipment(_ context.Context, equipmentName string) error {
	raw, err := json.Marshal(map[string]string{"name": equipmentName})
	if err != nil {
		return err
	}
	return d.sess.PutHandoff(session.KeySelectedEquipment, string(raw))
}
