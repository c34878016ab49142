package dto

// Request DTOs

type CreateAppointmentRequest struct {
	UserID          uint   `json:"user_id" validate:"required"`
	TreatmentID     uint   `json:"treatment_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

// UpdateAppointmentRequest is a partial update: nil fields are left
// unchanged.
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date,omitempty"`
	Status          *string `json:"status,omitempty"`
	TreatmentID     *uint   `json:"treatment_id,omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uint   `json:"id"`
	UserID          uint   `json:"user_id"`
	TreatmentID     uint   `json:"treatment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type CreateAppointmentResponse struct {
	AppointmentID uint                 `json:"appointment_id"`
	Appointment   *AppointmentResponse `json:"appointment"`
}
