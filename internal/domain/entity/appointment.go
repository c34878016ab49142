package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPaid      AppointmentStatus = "paid"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusPaid,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment is the system of record for booking state. UserID and
// TreatmentID are denormalized references into other services' stores;
// they carry no cross-service foreign-key guarantee.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint              `gorm:"not null;index" json:"user_id"`
	TreatmentID     uint              `gorm:"not null" json:"treatment_id"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Cancel forces the appointment into cancelled, regardless of the
// current status. Cancelling a paid or completed appointment is allowed.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// MarkPaid forces the appointment into paid. Called from the
// confirm-payment endpoint on behalf of the payment service; the
// appointment service itself does not verify that a payment exists.
func (a *Appointment) MarkPaid() {
	a.Status = AppointmentStatusPaid
}
