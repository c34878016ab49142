package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/internal/repository"
	"github.com/glowcare/clinic/internal/usecase"
	"github.com/glowcare/clinic/pkg/validator"

	"github.com/gorilla/mux"
)

func newPaymentAPI(t *testing.T) *mux.Router {
	t.Helper()

	db := newTestDB(t, &entity.Payment{}, &entity.ConfirmationOutbox{})
	log := newTestLogger()

	upstream := stubUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	client := gateway.NewAppointmentClient(upstream, newTestClientConfig(), log)

	uc := usecase.NewPaymentUsecase(db, log, repository.NewPaymentRepository(), repository.NewConfirmationOutboxRepository(), client)
	h := handler.NewPaymentHandler(uc, validator.NewValidator())

	return NewPaymentRouter(h, middleware.NewCORSMiddleware()).Setup()
}

func createPaymentViaAPI(t *testing.T, router *mux.Router, appointmentID uint) dto.PaymentResponse {
	t.Helper()

	code, env := doJSON(t, router, http.MethodPost, "/payments", "", map[string]interface{}{
		"user_id":        1,
		"appointment_id": appointmentID,
		"amount":         150000,
		"payment_method": "credit_card",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", code, env.Message)
	}

	var created dto.PaymentResponse
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode payment: %v", err)
	}
	return created
}

func TestPaymentAPI_DuplicateConflict(t *testing.T) {
	router := newPaymentAPI(t)

	first := createPaymentViaAPI(t, router, 7)

	code, env := doJSON(t, router, http.MethodPost, "/payments", "", map[string]interface{}{
		"user_id":        1,
		"appointment_id": 7,
		"amount":         150000,
		"payment_method": "cash",
	})
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}

	var existing dto.ExistingPaymentResponse
	if err := json.Unmarshal(env.Error, &existing); err != nil {
		t.Fatalf("failed to decode conflict payload: %v", err)
	}
	if existing.ExistingPaymentID != first.ID {
		t.Fatalf("expected existing id %d, got %d", first.ID, existing.ExistingPaymentID)
	}
	if existing.PaymentReference != first.PaymentReference {
		t.Fatalf("expected reference %q, got %q", first.PaymentReference, existing.PaymentReference)
	}
}

func TestPaymentAPI_RejectsInvalidAmount(t *testing.T) {
	router := newPaymentAPI(t)

	code, _ := doJSON(t, router, http.MethodPost, "/payments", "", map[string]interface{}{
		"user_id":        1,
		"appointment_id": 7,
		"amount":         -5,
		"payment_method": "cash",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", code)
	}
}

func TestPaymentAPI_StatusGuards(t *testing.T) {
	router := newPaymentAPI(t)

	created := createPaymentViaAPI(t, router, 7)

	code, env := doJSON(t, router, http.MethodPut, fmt.Sprintf("/payments/%d/status", created.ID), "", map[string]interface{}{
		"status": "completed",
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	var transition dto.PaymentStatusResponse
	if err := json.Unmarshal(env.Data, &transition); err != nil {
		t.Fatalf("failed to decode transition: %v", err)
	}
	if transition.OldStatus != "pending" || transition.NewStatus != "completed" {
		t.Fatalf("unexpected transition %s -> %s", transition.OldStatus, transition.NewStatus)
	}

	code, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/payments/%d/status", created.ID), "", map[string]interface{}{
		"status": "failed",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for completed->failed, got %d", code)
	}

	code, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/payments/%d/status", created.ID), "", map[string]interface{}{
		"status": "refunded",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", code)
	}
}

func TestPaymentAPI_ConfirmFlow(t *testing.T) {
	router := newPaymentAPI(t)

	created := createPaymentViaAPI(t, router, 7)

	code, env := doJSON(t, router, http.MethodPost, fmt.Sprintf("/payments/%d/confirm", created.ID), "", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	var confirmed dto.ConfirmPaymentResponse
	if err := json.Unmarshal(env.Data, &confirmed); err != nil {
		t.Fatalf("failed to decode confirmation: %v", err)
	}
	if confirmed.PaymentReference != created.PaymentReference || confirmed.PaidAt == "" {
		t.Fatalf("unexpected confirmation %+v", confirmed)
	}

	code, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/payments/%d/confirm", created.ID), "", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 on repeated confirm, got %d", code)
	}
	if env.Message != "Payment is not pending" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestPaymentAPI_AppointmentLookup(t *testing.T) {
	router := newPaymentAPI(t)

	created := createPaymentViaAPI(t, router, 7)

	code, env := doJSON(t, router, http.MethodGet, "/payments/appointment/7", "", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var fetched dto.PaymentResponse
	if err := json.Unmarshal(env.Data, &fetched); err != nil {
		t.Fatalf("failed to decode payment: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected payment %d, got %d", created.ID, fetched.ID)
	}

	code, _ = doJSON(t, router, http.MethodGet, "/payments/appointment/99", "", nil)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown appointment, got %d", code)
	}
}
