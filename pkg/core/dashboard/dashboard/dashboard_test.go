package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	config "github.com/scienceol/labdesk/internal/config"
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	core "github.com/scienceol/labdesk/pkg/core/dashboard"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	backend "github.com/scienceol/labdesk/pkg/repo/backend"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestDashboard(t *testing.T, mux *http.ServeMux) core.Service {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	config.Global().Backend.Addr = server.URL

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_ = sess.SetIdentity(&session.Identity{ID: 12, Name: "Ada", Email: "ada@uni.edu", Role: common.Student})

	tr := backend.NewTransport(sess)
	svc, err := New(sess, backend.NewLabs(tr), backend.NewEquipment(tr), backend.NewReservations(tr), backend.NewSharedTools(tr))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func TestStudentDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/labs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{{LabID: 1}, {LabID: 2}})
	})
	mux.HandleFunc("/labs/available", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{{LabID: 1}})
	})
	mux.HandleFunc("/reservations/student/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Reservation{
			{ReservationID: 1, Status: model.ReservationPending},
			{ReservationID: 2, Status: model.ReservationApproved},
			{ReservationID: 3, Status: model.ReservationRejected},
		})
	})
	mux.HandleFunc("/shared-tools/owner/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.SharedTool{{ToolID: 4}})
	})

	svc := newTestDashboard(t, mux)
	board, err := svc.Student(context.Background())
	if err != nil {
		t.Fatalf("Student: %v", err)
	}

	if board.TotalLabs != 2 || board.AvailableLabs != 1 {
		t.Fatalf("labs = %d/%d, want 2/1", board.AvailableLabs, board.TotalLabs)
	}
	if board.PendingCount != 1 || board.ApprovedCount != 1 {
		t.Fatalf("counts = pending %d approved %d", board.PendingCount, board.ApprovedCount)
	}
	if len(board.MySharedTools) != 1 {
		t.Fatalf("tools = %d", len(board.MySharedTools))
	}
}

func TestStudentDashboardPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/labs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{{LabID: 1}, {LabID: 2}, {LabID: 3}})
	})
	mux.HandleFunc("/labs/available", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{{LabID: 1}})
	})
	mux.HandleFunc("/reservations/student/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/shared-tools/owner/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.SharedTool{{ToolID: 4}, {ToolID: 5}})
	})

	svc := newTestDashboard(t, mux)
	board, err := svc.Student(context.Background())
	if err != nil {
		t.Fatalf("one failed endpoint must not fail the dashboard: %v", err)
	}

	if board.TotalLabs != 3 || len(board.MySharedTools) != 2 {
		t.Fatalf("healthy sections degraded: %+v", board)
	}
	if len(board.MyReservations) != 0 || board.PendingCount != 0 {
		t.Fatalf("failed section should come back empty: %+v", board)
	}
}

type panickyLabs struct {
	repo.Labs
}

func (p *panickyLabs) List(_ context.Context) ([]*model.Lab, error) {
	panic("corrupt labs payload")
}

func TestStudentDashboardFetchPanic(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/labs/available", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{{LabID: 1}})
	})
	mux.HandleFunc("/reservations/student/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Reservation{{ReservationID: 1, Status: model.ReservationPending}})
	})
	mux.HandleFunc("/shared-tools/owner/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.SharedTool{{ToolID: 4}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	config.Global().Backend.Addr = server.URL

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_ = sess.SetIdentity(&session.Identity{ID: 12, Role: common.Student})

	tr := backend.NewTransport(sess)
	svc, err := New(sess, &panickyLabs{Labs: backend.NewLabs(tr)},
		backend.NewEquipment(tr), backend.NewReservations(tr), backend.NewSharedTools(tr))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	board, err := svc.Student(context.Background())
	if err != nil {
		t.Fatalf("a panicking fetch must degrade, not fail the join: %v", err)
	}
	if board.TotalLabs != 0 {
		t.Fatalf("panicked section should come back empty, got %d labs", board.TotalLabs)
	}
	if board.AvailableLabs != 1 || board.PendingCount != 1 || len(board.MySharedTools) != 1 {
		t.Fatalf("healthy sections degraded: %+v", board)
	}
}

func TestStudentDashboardStaleGeneration(t *testing.T) {
	var impl *dashboardImpl

	mux := http.NewServeMux()
	mux.HandleFunc("/labs", func(w http.ResponseWriter, r *http.Request) {
		// a newer load starts while this one is still in flight
		impl.generation.Add(1)
		writeJSON(w, []*model.Lab{{LabID: 1}})
	})
	mux.HandleFunc("/labs/available", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Lab{})
	})
	mux.HandleFunc("/reservations/student/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.Reservation{})
	})
	mux.HandleFunc("/shared-tools/owner/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*model.SharedTool{})
	})

	svc := newTestDashboard(t, mux)
	impl = svc.(*dashboardImpl)

	if _, err := svc.Student(context.Background()); !errors.Is(err, code.StaleResult) {
		t.Fatalf("superseded load should be discarded, got %v", err)
	}
}

func TestEquipmentCatalogFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/equipment", func(w http.ResponseWriter, r *http.Request) {
		lab := &model.Lab{LabID: 1, LabName: "Physics Lab"}
		writeJSON(w, []*model.Equipment{
			{EquipmentName: "Oscilloscope", Status: model.EquipmentAvailable, Lab: lab},
			{EquipmentName: "Oscilloscope", Status: model.EquipmentUnavailable, Lab: lab},
			{EquipmentName: "Bunsen Burner", Status: model.EquipmentAvailable, Lab: lab},
		})
	})

	svc := newTestDashboard(t, mux)

	groups, err := svc.EquipmentCatalog(context.Background(), "oscillo")
	if err != nil {
		t.Fatalf("EquipmentCatalog: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Oscilloscope" {
		t.Fatalf("filtered groups: %+v", groups)
	}
	if groups[0].Available != 1 || groups[0].Total != 2 {
		t.Fatalf("available/total = %d/%d, want 1/2", groups[0].Available, groups[0].Total)
	}
}

func TestSelectEquipmentHandoff(t *testing.T) {
	svc := newTestDashboard(t, http.NewServeMux())
	impl := svc.(*dashboardImpl)

	if err := svc.SelectEquipment(context.Background(), "Centrifuge"); err != nil {
		t.Fatalf("SelectEquipment: %v", err)
	}

	raw, ok := impl.sess.TakeHandoff(session.KeySelectedEquipment)
	if !ok {
		t.Fatal("handoff not written")
	}
	if raw != `{"name":"Centrifuge"}` {
		t.Fatalf("handoff payload = %s", raw)
	}
}
