package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/repository"
)

func newAppointmentUsecase(t *testing.T) AppointmentUsecase {
	t.Helper()
	db := newTestDB(t, &entity.Appointment{})
	return NewAppointmentUsecase(db, newTestLogger(), repository.NewAppointmentRepository())
}

func TestCreateAppointment_StartsPending(t *testing.T) {
	uc := newAppointmentUsecase(t)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("expected status pending, got %q", resp.Status)
	}
	if resp.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if _, err := time.Parse(time.RFC3339, resp.AppointmentDate); err != nil {
		t.Fatalf("expected RFC 3339 date, got %q", resp.AppointmentDate)
	}
}

func TestCreateAppointment_AcceptsRFC3339(t *testing.T) {
	uc := newAppointmentUsecase(t)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.AppointmentDate != "2026-09-15T10:30:00Z" {
		t.Fatalf("unexpected date %q", resp.AppointmentDate)
	}
}

func TestCreateAppointment_RejectsBadDate(t *testing.T) {
	uc := newAppointmentUsecase(t)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "next tuesday",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGetAllAppointments_FiltersByUser(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	for _, userID := range []uint{1, 1, 2} {
		if _, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
			UserID:          userID,
			TreatmentID:     1,
			AppointmentDate: "2026-09-15 10:30",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err := uc.GetAll(ctx, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(all))
	}

	mine, err := uc.GetAll(ctx, 1)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 appointments for user 1, got %d", len(mine))
	}
	for _, a := range mine {
		if a.UserID != 1 {
			t.Fatalf("expected only user 1, got user %d", a.UserID)
		}
	}
}

func TestUpdateAppointment_PartialLeavesOtherFields(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := "confirmed"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != "confirmed" {
		t.Fatalf("expected status confirmed, got %q", updated.Status)
	}
	if updated.AppointmentDate != created.AppointmentDate {
		t.Fatalf("date changed: %q -> %q", created.AppointmentDate, updated.AppointmentDate)
	}
	if updated.TreatmentID != 2 {
		t.Fatalf("treatment changed: got %d", updated.TreatmentID)
	}
}

func TestUpdateAppointment_RejectsUnknownStatus(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := "rescheduled"
	if _, err := uc.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{Status: &status}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCancelAppointment_FromAnyStatus(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.ConfirmPayment(ctx, created.ID); err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}

	cancelled, err := uc.Cancel(ctx, created.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != "cancelled" {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
}

func TestConfirmPayment_SetsPaid(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paid, err := uc.ConfirmPayment(ctx, created.ID)
	if err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}
	if paid.Status != "paid" {
		t.Fatalf("expected paid, got %q", paid.Status)
	}

	// Confirming again is harmless.
	if _, err := uc.ConfirmPayment(ctx, created.ID); err != nil {
		t.Fatalf("repeat confirm failed: %v", err)
	}
}

func TestAppointment_NotFound(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	if _, err := uc.GetByID(ctx, 99); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on get, got %v", err)
	}
	if err := uc.Delete(ctx, 99); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on delete, got %v", err)
	}
	if _, err := uc.Cancel(ctx, 99); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on cancel, got %v", err)
	}
}

func TestDeleteAppointment_RemovesRow(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:          1,
		TreatmentID:     2,
		AppointmentDate: "2026-09-15 10:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound after delete, got %v", err)
	}
}
