package app

import (
	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	coreApproval "github.com/scienceol/labdesk/pkg/core/approval"
	approval "github.com/scienceol/labdesk/pkg/core/approval/approval"
	coreAuth "github.com/scienceol/labdesk/pkg/core/auth"
	auth "github.com/scienceol/labdesk/pkg/core/auth/auth"
	coreDashboard "github.com/scienceol/labdesk/pkg/core/dashboard"
	dashboard "github.com/scienceol/labdesk/pkg/core/dashboard/dashboard"
	coreMaintenance "github.com/scienceol/labdesk/pkg/core/maintenance"
	maintenance "github.com/scienceol/labdesk/pkg/core/maintenance/maintenance"
	coreReservation "github.com/scienceol/labdesk/pkg/core/reservation"
	reservation "github.com/scienceol/labdesk/pkg/core/reservation/reservation"
	coreResearch "github.com/scienceol/labdesk/pkg/core/research"
	research "github.com/scienceol/labdesk/pkg/core/research/research"
	coreSharing "github.com/scienceol/labdesk/pkg/core/sharing"
	sharing "github.com/scienceol/labdesk/pkg/core/sharing/sharing"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	backend "github.com/scienceol/labdesk/pkg/repo/backend"
)

// App wires the session, transport and core services together for the
// command layer.
type App struct {
	Sess *session.Store

	Auth        coreAuth.Service
	Reservation coreReservation.Service
	Dashboard   coreDashboard.Service
	Sharing     coreSharing.Service
	Maintenance coreMaintenance.Service
	Approval    coreApproval.Service
	Research    coreResearch.Service
}

func New() (*App, error) {
	conf := config.Global()

	sess, err := session.NewStore(conf.Session.StatePath)
	if err != nil {
		return nil, err
	}

	t := backend.NewTransport(sess)
	labs := backend.NewLabs(t)
	equipment := backend.NewEquipment(t)
	reservations := backend.NewReservations(t)
	labResv := backend.NewLabReservations(t)
	tools := backend.NewSharedTools(t)
	queue := backend.NewMaintenance(t)
	researchRepo := backend.NewResearch(t)

	board, err := dashboard.New(sess, labs, equipment, reservations, tools)
	if err != nil {
		return nil, err
	}

	return &App{
		Sess:        sess,
		Auth:        auth.New(sess, backend.NewAuth(t)),
		Reservation: reservation.New(sess, reservations, labResv, labs),
		Dashboard:   board,
		Sharing:     sharing.New(sess, tools),
		Maintenance: maintenance.New(sess, queue),
		Approval:    approval.New(sess, labs, reservations, equipment),
		Research:    research.New(sess, researchRepo, labs, equipment),
	}, nil
}
