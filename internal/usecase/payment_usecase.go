package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glowcare/clinic/internal/converter"
	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/domain/repository"
	"github.com/glowcare/clinic/internal/gateway"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentNotPending       = errors.New("payment is not pending")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrCompletedToFailed       = errors.New("completed payment cannot be marked failed")
	ErrNoPaymentForAppointment = errors.New("no payment found for this appointment")
)

// DuplicatePaymentError rejects a second payment for an appointment and
// carries the existing payment's identity so the caller can reference it.
type DuplicatePaymentError struct {
	ExistingID uint
	Reference  string
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("payment already exists with reference %s", e.Reference)
}

type PaymentUsecase interface {
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetAll(ctx context.Context, userID uint) ([]dto.PaymentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error)
	GetByAppointmentID(ctx context.Context, appointmentID uint) (*dto.PaymentResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.PaymentStatusResponse, error)
	Confirm(ctx context.Context, id uint) (*dto.ConfirmPaymentResponse, error)
}

type paymentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	paymentRepo       repository.PaymentRepository
	outboxRepo        repository.ConfirmationOutboxRepository
	appointmentClient *gateway.AppointmentClient
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	outboxRepo repository.ConfirmationOutboxRepository,
	appointmentClient *gateway.AppointmentClient,
) PaymentUsecase {
	return &paymentUsecase{
		db:                db,
		log:               log,
		paymentRepo:       paymentRepo,
		outboxRepo:        outboxRepo,
		appointmentClient: appointmentClient,
	}
}

// Create records a new pending payment. An appointment can have at most
// one payment; a duplicate returns the existing reference instead.
func (u *paymentUsecase) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	existing, err := u.paymentRepo.FindByAppointmentID(u.db.WithContext(ctx), req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing payment for appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicatePaymentError{ExistingID: existing.ID, Reference: existing.PaymentReference}
	}

	payment := &entity.Payment{
		UserID:           req.UserID,
		AppointmentID:    req.AppointmentID,
		Amount:           req.Amount,
		PaymentMethod:    strings.TrimSpace(req.PaymentMethod),
		PaymentReference: generatePaymentReference(time.Now()),
		Status:           entity.PaymentStatusPending,
	}

	if err := u.paymentRepo.Create(u.db.WithContext(ctx), payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	u.log.Infof("Payment created: id=%d, appointment=%d, reference=%s", payment.ID, payment.AppointmentID, payment.PaymentReference)
	return converter.PaymentToResponse(payment), nil
}

// GetAll lists payments newest first, filtered by user when userID is
// non-zero.
func (u *paymentUsecase) GetAll(ctx context.Context, userID uint) ([]dto.PaymentResponse, error) {
	var (
		payments []entity.Payment
		err      error
	)
	if userID != 0 {
		payments, err = u.paymentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	} else {
		payments, err = u.paymentRepo.FindAll(u.db.WithContext(ctx))
	}
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	return converter.PaymentsToResponses(payments), nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetByAppointmentID(ctx context.Context, appointmentID uint) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNoPaymentForAppointment
	}

	return converter.PaymentToResponse(payment), nil
}

// UpdateStatus applies a generic status transition. Completion is a
// one-way ratchet: completed never regresses to failed. Any other
// transition is allowed, including failed back to completed. The first
// transition into completed stamps PaidAt and triggers the appointment
// confirmation choreography.
func (u *paymentUsecase) UpdateStatus(ctx context.Context, id uint, status string) (*dto.PaymentStatusResponse, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}

	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	oldStatus := payment.Status
	newStatus := entity.PaymentStatus(status)

	if oldStatus == entity.PaymentStatusCompleted && newStatus == entity.PaymentStatusFailed {
		return nil, ErrCompletedToFailed
	}

	if newStatus == entity.PaymentStatusCompleted && oldStatus != entity.PaymentStatusCompleted {
		if err := u.complete(ctx, payment); err != nil {
			return nil, err
		}
	} else {
		payment.Status = newStatus
		if err := u.paymentRepo.Update(u.db.WithContext(ctx), payment); err != nil {
			u.log.Warnf("Failed to update payment %d status: %+v", id, err)
			return nil, err
		}
	}

	u.log.Infof("Payment %d status updated from %s to %s", id, oldStatus, payment.Status)
	return &dto.PaymentStatusResponse{
		PaymentID: payment.ID,
		OldStatus: string(oldStatus),
		NewStatus: string(payment.Status),
	}, nil
}

// Confirm is the shortcut over "set status to completed", valid only
// while the payment is still pending.
func (u *paymentUsecase) Confirm(ctx context.Context, id uint) (*dto.ConfirmPaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if !payment.IsPending() {
		return nil, ErrPaymentNotPending
	}

	if err := u.complete(ctx, payment); err != nil {
		return nil, err
	}

	u.log.Infof("Payment confirmed: id=%d, reference=%s", payment.ID, payment.PaymentReference)
	return &dto.ConfirmPaymentResponse{
		PaymentReference: payment.PaymentReference,
		PaidAt:           payment.PaidAt.Format(time.RFC3339),
	}, nil
}

// complete commits the payment's transition into completed together
// with a confirmation outbox record, then makes one synchronous
// attempt to push the confirmation to the appointment service. A
// failed attempt is swallowed: the payment stays completed and the
// outbox row stays pending for the reconciler. The two stores may
// diverge until the sweep catches up.
func (u *paymentUsecase) complete(ctx context.Context, payment *entity.Payment) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment.Complete(time.Now().UTC())
	if err := u.paymentRepo.Update(tx, payment); err != nil {
		u.log.Warnf("Failed to complete payment %d: %+v", payment.ID, err)
		return err
	}

	record := &entity.ConfirmationOutbox{
		PaymentID:     payment.ID,
		AppointmentID: payment.AppointmentID,
		Status:        entity.OutboxStatusPending,
	}
	if err := u.outboxRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to record confirmation outbox for payment %d: %+v", payment.ID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit payment completion %d: %+v", payment.ID, err)
		return err
	}

	u.pushConfirmation(ctx, record)
	return nil
}

// pushConfirmation attempts the confirm-payment call and updates the
// outbox row accordingly. Errors never propagate to the caller.
func (u *paymentUsecase) pushConfirmation(ctx context.Context, record *entity.ConfirmationOutbox) {
	record.Attempts++

	if err := u.appointmentClient.ConfirmPayment(ctx, record.AppointmentID); err != nil {
		record.LastError = err.Error()
		u.log.Warnf("Appointment confirmation for payment %d left pending: %v", record.PaymentID, err)
	} else {
		now := time.Now().UTC()
		record.Status = entity.OutboxStatusSent
		record.SentAt = &now
		record.LastError = ""
	}

	if err := u.outboxRepo.Update(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to update confirmation outbox %d: %+v", record.ID, err)
	}
}

// generatePaymentReference builds a reference of the form
// PAY-<yyyymmddhhmmss>-<8 hex chars>: time-ordered by construction and
// human-auditable, distinct from the numeric id.
func generatePaymentReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("PAY-%s-%s", now.Format("20060102150405"), suffix)
}
