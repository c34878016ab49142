package entity

import "time"

// OutboxStatus represents the delivery state of a confirmation record
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// ConfirmationOutbox is written in the same transaction that completes a
// payment. It records the pending confirm-payment call to the
// appointment service so the two stores cannot silently diverge: rows
// left pending after the synchronous attempt are retried by the
// reconciler and dead-lettered as failed once attempts run out.
type ConfirmationOutbox struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentID     uint         `gorm:"not null;index" json:"payment_id"`
	AppointmentID uint         `gorm:"not null" json:"appointment_id"`
	Status        OutboxStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Attempts      int          `gorm:"not null;default:0" json:"attempts"`
	LastError     string       `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	SentAt        *time.Time   `json:"sent_at"`
}

func (ConfirmationOutbox) TableName() string {
	return "confirmation_outbox"
}
