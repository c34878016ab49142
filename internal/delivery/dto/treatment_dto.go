package dto

// Request DTOs

type CreateTreatmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
}

// UpdateTreatmentRequest is a partial update: nil fields are left
// unchanged.
type UpdateTreatmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
}

// BookTreatmentRequest books the treatment in the URL path for a user.
// The appointment itself is created by the appointment service.
type BookTreatmentRequest struct {
	UserID          uint   `json:"user_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

// Response DTOs

type TreatmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Duration    int    `json:"duration"`
	CreatedAt   string `json:"created_at"`
}

type BookTreatmentResponse struct {
	AppointmentID  uint   `json:"appointment_id"`
	TreatmentName  string `json:"treatment_name"`
	TreatmentPrice int64  `json:"treatment_price"`
}
