package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/glowcare/clinic/internal/converter"
	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("invalid appointment date, use YYYY-MM-DD HH:MM or RFC 3339")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

// appointmentDateFormats are the accepted request formats, tried in
// order. Responses always render RFC 3339.
var appointmentDateFormats = []string{
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseAppointmentDate parses a client-supplied date in either accepted
// format.
func ParseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, userID uint) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
	Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	ConfirmPayment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Create books a new appointment. Status always starts at pending.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := ParseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		UserID:          req.UserID,
		TreatmentID:     req.TreatmentID,
		AppointmentDate: date,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, user=%d, treatment=%d", appointment.ID, appointment.UserID, appointment.TreatmentID)
	return converter.AppointmentToResponse(appointment), nil
}

// GetAll lists appointments, filtered by user when userID is non-zero.
func (u *appointmentUsecase) GetAll(ctx context.Context, userID uint) ([]dto.AppointmentResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	if userID != 0 {
		appointments, err = u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	} else {
		appointments, err = u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies a partial update: only the fields present in the
// request change. Concurrent updates to the same row are last-write-wins.
func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.AppointmentDate != nil {
		date, err := ParseAppointmentDate(*req.AppointmentDate)
		if err != nil {
			return nil, err
		}
		appointment.AppointmentDate = date
	}
	if req.Status != nil {
		if !entity.ValidAppointmentStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.TreatmentID != nil {
		appointment.TreatmentID = *req.TreatmentID
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	return u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
}

// Cancel forces the appointment into cancelled regardless of its
// current status, including paid and completed.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment cancelled: id=%d", id)
	return converter.AppointmentToResponse(appointment), nil
}

// ConfirmPayment forces the appointment into paid. This is the only
// entry point payment flows use to reflect completion; the caller is
// trusted.
func (u *appointmentUsecase) ConfirmPayment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.MarkPaid()
	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to confirm payment for appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Payment confirmed for appointment: id=%d", id)
	return converter.AppointmentToResponse(appointment), nil
}
