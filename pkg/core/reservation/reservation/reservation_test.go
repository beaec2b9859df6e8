package reservation

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
	core "github.com/scienceol/labdesk/pkg/core/reservation"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	backend "github.com/scienceol/labdesk/pkg/repo/backend"
)

type fakeBackend struct {
	available     bool
	createdCount  int
	lastCreate    *model.CreateReservationRequest
	myReservation []*model.Reservation
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/reservations/check-availability", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f.available)
	})
	mux.HandleFunc("/reservations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		f.createdCount++
		req := &model.CreateReservationRequest{}
		_ = json.NewDecoder(r.Body).Decode(req)
		f.lastCreate = req

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&model.Reservation{
			ReservationID: 77,
			Date:          req.Date,
			Time:          req.Time,
			Duration:      req.Duration,
			Status:        model.ReservationPending,
		})
	})
	mux.HandleFunc("/reservations/student/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f.myReservation)
	})
	return mux
}

func newTestService(t *testing.T, f *fakeBackend, user *session.Identity) core.Service {
	t.Helper()

	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)
	config.Global().Backend.Addr = server.URL

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if user != nil {
		_ = sess.SetToken("test-token")
		_ = sess.SetIdentity(user)
	}

	tr := backend.NewTransport(sess)
	return New(sess, backend.NewReservations(tr), backend.NewLabReservations(tr), backend.NewLabs(tr))
}

func student() *session.Identity {
	return &session.Identity{ID: 12, Name: "Ada", Email: "ada@uni.edu", Role: common.Student}
}

func TestReserveEquipment(t *testing.T) {
	fake := &fakeBackend{
		available: true,
		myReservation: []*model.Reservation{{
			ReservationID: 77,
			Equipment:     &model.Equipment{EquipmentName: "Oscilloscope"},
			Date:          "2026-09-01",
			Time:          "09:00",
			Duration:      90,
			Status:        model.ReservationPending,
		}},
	}
	svc := newTestService(t, fake, student())

	resp, err := svc.ReserveEquipment(context.Background(), &core.ReserveEquipmentReq{
		EquipmentName: "Oscilloscope",
		Date:          "2026-09-01",
		StartTime:     "09:00",
		EndTime:       "10:30",
	})
	if err != nil {
		t.Fatalf("ReserveEquipment: %v", err)
	}

	if resp.ReservationID != 77 {
		t.Fatalf("id = %d", resp.ReservationID)
	}
	if fake.lastCreate.Duration != 90 {
		t.Fatalf("submitted duration = %d, want 90", fake.lastCreate.Duration)
	}
	if fake.lastCreate.Purpose != "General use" || fake.lastCreate.TeamSize != 1 {
		t.Fatalf("defaults not applied: %+v", fake.lastCreate)
	}
	if fake.lastCreate.ReservationType != "EQUIPMENT" {
		t.Fatalf("reservationType = %q", fake.lastCreate.ReservationType)
	}

	if len(resp.MyReservations) != 1 {
		t.Fatalf("refetch returned %d rows", len(resp.MyReservations))
	}
	view := resp.MyReservations[0]
	if view.EndTime != "10:30" {
		t.Fatalf("derived end time = %q, want 10:30", view.EndTime)
	}
	if view.Status != "pending" {
		t.Fatalf("status = %q, want lowercase pending", view.Status)
	}
}

func TestReserveEquipmentNotAvailable(t *testing.T) {
	fake := &fakeBackend{available: false}
	svc := newTestService(t, fake, student())

	_, err := svc.ReserveEquipment(context.Background(), &core.ReserveEquipmentReq{
		EquipmentName: "Oscilloscope",
		Date:          "2026-09-01",
		StartTime:     "09:00",
		EndTime:       "10:00",
	})
	if !errors.Is(err, code.NotAvailable) {
		t.Fatalf("want NotAvailable, got %v", err)
	}
	if fake.createdCount != 0 {
		t.Fatal("POST must not be issued when the slot is taken")
	}
}

func TestReserveEquipmentInvalidWindowSkipsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("true"))
	}))
	t.Cleanup(server.Close)
	config.Global().Backend.Addr = server.URL

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_ = sess.SetIdentity(student())
	tr := backend.NewTransport(sess)
	svc := New(sess, backend.NewReservations(tr), backend.NewLabReservations(tr), backend.NewLabs(tr))

	_, err = svc.ReserveEquipment(context.Background(), &core.ReserveEquipmentReq{
		EquipmentName: "Oscilloscope",
		Date:          "2026-09-01",
		StartTime:     "07:00",
		EndTime:       "09:00",
	})
	if !errors.Is(err, code.OutsideSchoolHours) {
		t.Fatalf("want OutsideSchoolHours, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("local validation must not touch the network, saw %d requests", requests)
	}
}

func TestReserveEquipmentRequiresLogin(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, nil)

	_, err := svc.ReserveEquipment(context.Background(), &core.ReserveEquipmentReq{
		EquipmentName: "Oscilloscope",
		StartTime:     "09:00",
		EndTime:       "10:00",
	})
	if !errors.Is(err, code.UnLogin) {
		t.Fatalf("want UnLogin, got %v", err)
	}
}

func TestReserveLabDeniedForStudent(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, student())

	_, err := svc.ReserveLab(context.Background(), &core.ReserveLabReq{
		LabID:     3,
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	if !errors.Is(err, code.RoleDenied) {
		t.Fatalf("want RoleDenied, got %v", err)
	}
}

func TestReserveLabAsDoctor(t *testing.T) {
	var created *model.CreateLabReservationRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/labs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*model.Lab{
			{LabID: 3, LabName: "Chemistry Lab"},
			{LabID: 255, LabName: "Research Wing A"},
		})
	})
	mux.HandleFunc("/lab-reservations/check-availability", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("true"))
	})
	mux.HandleFunc("/lab-reservations", func(w http.ResponseWriter, r *http.Request) {
		created = &model.CreateLabReservationRequest{}
		_ = json.NewDecoder(r.Body).Decode(created)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&model.LabReservation{LabReservationID: 9})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	config.Global().Backend.Addr = server.URL

	sess, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_ = sess.SetIdentity(&session.Identity{ID: 5, Name: "Dr. Liu", Email: "liu@uni.edu", Role: common.Doctor})
	tr := backend.NewTransport(sess)
	svc := New(sess, backend.NewReservations(tr), backend.NewLabReservations(tr), backend.NewLabs(tr))

	resp, err := svc.ReserveLab(context.Background(), &core.ReserveLabReq{
		LabID:     255,
		Date:      "2026-09-02",
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "protein assay",
	})
	if err != nil {
		t.Fatalf("ReserveLab: %v", err)
	}
	if resp.LabReservationID != 9 {
		t.Fatalf("id = %d", resp.LabReservationID)
	}

	// lab reservations carry the explicit end time, no duration field
	if created == nil || created.StartTime != "10:00" || created.EndTime != "12:00" {
		t.Fatalf("submitted window: %+v", created)
	}
	if created.DoctorID != 5 {
		t.Fatalf("doctorId = %d", created.DoctorID)
	}
}

func TestTakeSelectedEquipment(t *testing.T) {
	svc := newTestService(t, &fakeBackend{}, student())
	impl := svc.(*reservationImpl)

	_ = impl.sess.PutHandoff(session.KeySelectedEquipment, `{"name":"Centrifuge"}`)

	name, ok := svc.TakeSelectedEquipment(context.Background())
	if !ok || name != "Centrifuge" {
		t.Fatalf("take = %q %v", name, ok)
	}
	if _, ok := svc.TakeSelectedEquipment(context.Background()); ok {
		t.Fatal("handoff must be one shot")
	}
}
