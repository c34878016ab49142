package service

import (
	"context"
	"time"

	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/domain/repository"
	"github.com/glowcare/clinic/internal/gateway"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sweepBatchSize = 100

// OutboxReconciler periodically retries pending appointment confirmations.
// A row that exhausts its attempts is marked failed and left for manual
// inspection.
type OutboxReconciler struct {
	db                *gorm.DB
	log               *logrus.Logger
	outboxRepo        repository.ConfirmationOutboxRepository
	appointmentClient *gateway.AppointmentClient
	maxAttempts       int
	schedule          string
	cron              *cron.Cron
}

func NewOutboxReconciler(
	db *gorm.DB,
	log *logrus.Logger,
	outboxRepo repository.ConfirmationOutboxRepository,
	appointmentClient *gateway.AppointmentClient,
	schedule string,
	maxAttempts int,
) *OutboxReconciler {
	return &OutboxReconciler{
		db:                db,
		log:               log,
		outboxRepo:        outboxRepo,
		appointmentClient: appointmentClient,
		maxAttempts:       maxAttempts,
		schedule:          schedule,
		cron:              cron.New(),
	}
}

func (r *OutboxReconciler) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.Sweep); err != nil {
		return err
	}
	r.cron.Start()
	r.log.Infof("Confirmation reconciler started with schedule %q", r.schedule)
	return nil
}

func (r *OutboxReconciler) Stop() {
	r.cron.Stop()
}

// Sweep pushes every pending confirmation once. It is safe to call
// concurrently with the synchronous push on the completion path: the
// confirm endpoint tolerates repeated delivery.
func (r *OutboxReconciler) Sweep() {
	ctx := context.Background()

	records, err := r.outboxRepo.FindPending(r.db.WithContext(ctx), sweepBatchSize)
	if err != nil {
		r.log.Warnf("Failed to load pending confirmations: %+v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	r.log.Infof("Reconciling %d pending confirmation(s)", len(records))

	for i := range records {
		record := &records[i]
		record.Attempts++

		if err := r.appointmentClient.ConfirmPayment(ctx, record.AppointmentID); err != nil {
			record.LastError = err.Error()
			if record.Attempts >= r.maxAttempts {
				record.Status = entity.OutboxStatusFailed
				r.log.Errorf("Confirmation for payment %d dead-lettered after %d attempts: %v", record.PaymentID, record.Attempts, err)
			} else {
				r.log.Warnf("Confirmation for payment %d still pending (attempt %d): %v", record.PaymentID, record.Attempts, err)
			}
		} else {
			now := time.Now().UTC()
			record.Status = entity.OutboxStatusSent
			record.SentAt = &now
			record.LastError = ""
			r.log.Infof("Confirmation for payment %d delivered", record.PaymentID)
		}

		if err := r.outboxRepo.Update(r.db.WithContext(ctx), record); err != nil {
			r.log.Warnf("Failed to update confirmation outbox %d: %+v", record.ID, err)
		}
	}
}
