package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/http/middleware"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/pkg/response"
)

// ProxyHandler forwards cross-service actions on behalf of an
// authenticated user. It performs no business validation of its own:
// the authenticated user_id is injected into the body, the collaborator
// decides, and its status code and body are relayed unchanged. Role
// gating happens in the policy middleware before these handlers run.
type ProxyHandler struct {
	appointmentClient *gateway.AppointmentClient
	paymentClient     *gateway.PaymentClient
}

func NewProxyHandler(appointmentClient *gateway.AppointmentClient, paymentClient *gateway.PaymentClient) *ProxyHandler {
	return &ProxyHandler{
		appointmentClient: appointmentClient,
		paymentClient:     paymentClient,
	}
}

// BookAppointment forwards the body to the appointment service with the
// caller's user_id injected
func (h *ProxyHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	body, ok := h.bodyWithUserID(w, r)
	if !ok {
		return
	}

	result, err := h.appointmentClient.CreateAppointment(r.Context(), body)
	if err != nil {
		response.BadGateway(w, "Appointment service unavailable")
		return
	}

	response.Relay(w, result.StatusCode, result.Body)
}

// MakePayment forwards the body to the payment service with the
// caller's user_id injected
func (h *ProxyHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	body, ok := h.bodyWithUserID(w, r)
	if !ok {
		return
	}

	result, err := h.paymentClient.CreatePayment(r.Context(), body)
	if err != nil {
		response.BadGateway(w, "Payment service unavailable")
		return
	}

	response.Relay(w, result.StatusCode, result.Body)
}

// ViewAppointments lists appointments scoped by role: patients see only
// their own, roles with the view-all permission see everything.
func (h *ProxyHandler) ViewAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter := userID
	if middleware.Allowed(middleware.OpViewAllAppointments, role) {
		filter = 0
	}

	result, err := h.appointmentClient.ListAppointments(r.Context(), filter)
	if err != nil {
		response.BadGateway(w, "Appointment service unavailable")
		return
	}

	response.Relay(w, result.StatusCode, result.Body)
}

// ManageAppointment forwards PUT/DELETE /appointments/{id} verbatim
func (h *ProxyHandler) ManageAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var result *gateway.Result
	switch r.Method {
	case http.MethodPut:
		body, readErr := io.ReadAll(r.Body)
		if readErr != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
		result, err = h.appointmentClient.UpdateAppointment(r.Context(), id, body)
	case http.MethodDelete:
		result, err = h.appointmentClient.DeleteAppointment(r.Context(), id)
	default:
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	if err != nil {
		response.BadGateway(w, "Appointment service unavailable")
		return
	}

	response.Relay(w, result.StatusCode, result.Body)
}

// bodyWithUserID decodes the request body and overwrites user_id with
// the authenticated identity before forwarding.
func (h *ProxyHandler) bodyWithUserID(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return nil, false
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			payload = map[string]interface{}{}
		} else {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return nil, false
		}
	}
	payload["user_id"] = userID

	body, err := json.Marshal(payload)
	if err != nil {
		response.InternalServerError(w, "Failed to build upstream request")
		return nil, false
	}

	return body, true
}
