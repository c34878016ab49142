package dto

// Request DTOs

type CreatePaymentRequest struct {
	UserID        uint   `json:"user_id" validate:"required"`
	AppointmentID uint   `json:"appointment_id" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type PaymentResponse struct {
	ID               uint    `json:"id"`
	UserID           uint    `json:"user_id"`
	AppointmentID    uint    `json:"appointment_id"`
	Amount           int64   `json:"amount"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentReference string  `json:"payment_reference"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
	PaidAt           *string `json:"paid_at"`
}

// ExistingPaymentResponse is returned with a 409 when an appointment
// already has a payment.
type ExistingPaymentResponse struct {
	ExistingPaymentID uint   `json:"existing_payment_id"`
	PaymentReference  string `json:"payment_reference"`
}

type PaymentStatusResponse struct {
	PaymentID uint   `json:"payment_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type ConfirmPaymentResponse struct {
	PaymentReference string `json:"payment_reference"`
	PaidAt           string `json:"paid_at"`
}
