package entity

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment records a financial transaction for exactly one appointment.
// Amount is in minor currency units. PaymentReference is the generated,
// human-auditable identifier, distinct from the numeric id.
type Payment struct {
	ID               uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint          `gorm:"not null;index" json:"user_id"`
	AppointmentID    uint          `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Amount           int64         `gorm:"not null" json:"amount"`
	PaymentMethod    string        `gorm:"type:varchar(50);not null" json:"payment_method"`
	PaymentReference string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"payment_reference"`
	Status           PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	PaidAt           *time.Time    `json:"paid_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPending checks if the payment has not been settled yet
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsCompleted checks if the payment has been settled
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// Complete moves the payment into completed and stamps PaidAt on the
// first transition only. PaidAt never changes once set.
func (p *Payment) Complete(now time.Time) {
	p.Status = PaymentStatusCompleted
	if p.PaidAt == nil {
		p.PaidAt = &now
	}
}
