package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/glowcare/clinic/config"

	"github.com/sirupsen/logrus"
)

// AppointmentClient talks to the appointment service's REST API.
type AppointmentClient struct {
	*client
}

func NewAppointmentClient(baseURL string, cfg config.ClientConfig, log *logrus.Logger) *AppointmentClient {
	return &AppointmentClient{client: newClient(baseURL, cfg, log)}
}

// CreateAppointment forwards a raw booking body to POST /appointments
// and relays the upstream response unchanged.
func (c *AppointmentClient) CreateAppointment(ctx context.Context, body []byte) (*Result, error) {
	return c.do(ctx, http.MethodPost, "/appointments", body)
}

// ListAppointments fetches the appointment list, optionally filtered by
// user id. userID == 0 means unfiltered.
func (c *AppointmentClient) ListAppointments(ctx context.Context, userID uint) (*Result, error) {
	path := "/appointments"
	if userID != 0 {
		path += "?" + url.Values{"user_id": {fmt.Sprint(userID)}}.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// UpdateAppointment forwards a raw partial-update body to
// PUT /appointments/{id}.
func (c *AppointmentClient) UpdateAppointment(ctx context.Context, id uint, body []byte) (*Result, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), body)
}

// DeleteAppointment forwards DELETE /appointments/{id}.
func (c *AppointmentClient) DeleteAppointment(ctx context.Context, id uint) (*Result, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil)
}

// ConfirmPayment tells the appointment service a payment for the
// appointment has completed. Returns an error for transport failures
// and for non-2xx answers, so callers can record the failed attempt.
func (c *AppointmentClient) ConfirmPayment(ctx context.Context, appointmentID uint) error {
	result, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/appointments/%d/confirm-payment", appointmentID), nil)
	if err != nil {
		return err
	}
	if !result.IsSuccess() {
		return fmt.Errorf("confirm-payment for appointment %d rejected with status %d", appointmentID, result.StatusCode)
	}
	return nil
}
