package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/internal/repository"
)

func newTreatmentUsecase(t *testing.T, upstream http.Handler) TreatmentUsecase {
	t.Helper()

	db := newTestDB(t, &entity.Treatment{})
	log := newTestLogger()

	baseURL := "http://127.0.0.1:1"
	if upstream != nil {
		server := httptest.NewServer(upstream)
		t.Cleanup(server.Close)
		baseURL = server.URL
	} else {
		// A closed listener stands in for a dead appointment service.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL = server.URL
		server.Close()
	}

	client := gateway.NewAppointmentClient(baseURL, newTestClientConfig(), log)
	return NewTreatmentUsecase(db, log, repository.NewTreatmentRepository(), client)
}

func TestSeedDefaults_FillsEmptyCatalog(t *testing.T) {
	uc := newTreatmentUsecase(t, http.NotFoundHandler())
	ctx := context.Background()

	if err := uc.SeedDefaults(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	treatments, err := uc.GetAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(treatments) != 5 {
		t.Fatalf("expected 5 default treatments, got %d", len(treatments))
	}
	if treatments[0].Name != "Facial Treatment" || treatments[0].Price != 150000 {
		t.Fatalf("unexpected first treatment %q/%d", treatments[0].Name, treatments[0].Price)
	}

	// Seeding again must not duplicate the catalog.
	if err := uc.SeedDefaults(ctx); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	treatments, err = uc.GetAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(treatments) != 5 {
		t.Fatalf("expected catalog unchanged, got %d treatments", len(treatments))
	}
}

func TestTreatmentCRUD(t *testing.T) {
	uc := newTreatmentUsecase(t, http.NotFoundHandler())
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateTreatmentRequest{
		Name:        "Hot Stone Massage",
		Description: "Full body massage with heated stones",
		Price:       250000,
		Duration:    75,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	price := int64(275000)
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateTreatmentRequest{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 275000 {
		t.Fatalf("expected price 275000, got %d", updated.Price)
	}
	if updated.Name != created.Name {
		t.Fatalf("name changed on partial update: %q", updated.Name)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrTreatmentNotFound) {
		t.Fatalf("expected ErrTreatmentNotFound after delete, got %v", err)
	}
}

func TestBookTreatment_RelaysAppointment(t *testing.T) {
	var forwarded dto.CreateAppointmentRequest
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/appointments" {
			t.Errorf("unexpected upstream call %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&forwarded); err != nil {
			t.Errorf("failed to decode forwarded body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"appointment_id":42}}`))
	})

	uc := newTreatmentUsecase(t, upstream)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateTreatmentRequest{
		Name:     "Facial Treatment",
		Price:    150000,
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	booked, err := uc.Book(ctx, created.ID, &dto.BookTreatmentRequest{
		UserID:          9,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}
	if booked.AppointmentID != 42 {
		t.Fatalf("expected appointment 42, got %d", booked.AppointmentID)
	}
	if booked.TreatmentName != "Facial Treatment" || booked.TreatmentPrice != 150000 {
		t.Fatalf("unexpected treatment echo %q/%d", booked.TreatmentName, booked.TreatmentPrice)
	}

	if forwarded.UserID != 9 || forwarded.TreatmentID != created.ID {
		t.Fatalf("unexpected forwarded booking %+v", forwarded)
	}
}

func TestBookTreatment_UnknownTreatment(t *testing.T) {
	uc := newTreatmentUsecase(t, http.NotFoundHandler())

	_, err := uc.Book(context.Background(), 99, &dto.BookTreatmentRequest{
		UserID:          9,
		AppointmentDate: "2026-09-15 10:30",
	})
	if !errors.Is(err, ErrTreatmentNotFound) {
		t.Fatalf("expected ErrTreatmentNotFound, got %v", err)
	}
}

func TestBookTreatment_UpstreamRejection(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Validation failed"}`))
	})
	uc := newTreatmentUsecase(t, upstream)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateTreatmentRequest{
		Name:     "Facial Treatment",
		Price:    150000,
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = uc.Book(ctx, created.ID, &dto.BookTreatmentRequest{
		UserID:          9,
		AppointmentDate: "bad date",
	})
	if !errors.Is(err, ErrBookingRejected) {
		t.Fatalf("expected ErrBookingRejected, got %v", err)
	}
}

func TestBookTreatment_UpstreamDown(t *testing.T) {
	uc := newTreatmentUsecase(t, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateTreatmentRequest{
		Name:     "Facial Treatment",
		Price:    150000,
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = uc.Book(ctx, created.ID, &dto.BookTreatmentRequest{
		UserID:          9,
		AppointmentDate: "2026-09-15 10:30",
	})
	if !errors.Is(err, gateway.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
