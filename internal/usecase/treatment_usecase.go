package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/glowcare/clinic/internal/converter"
	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/domain/repository"
	"github.com/glowcare/clinic/internal/gateway"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTreatmentNotFound = errors.New("treatment not found")
	ErrBookingRejected   = errors.New("failed to book appointment")
)

type TreatmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	GetAll(ctx context.Context) ([]dto.TreatmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TreatmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	Delete(ctx context.Context, id uint) error
	Book(ctx context.Context, id uint, req *dto.BookTreatmentRequest) (*dto.BookTreatmentResponse, error)
	SeedDefaults(ctx context.Context) error
}

type treatmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	treatmentRepo     repository.TreatmentRepository
	appointmentClient *gateway.AppointmentClient
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
	appointmentClient *gateway.AppointmentClient,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:                db,
		log:               log,
		treatmentRepo:     treatmentRepo,
		appointmentClient: appointmentClient,
	}
}

func (u *treatmentUsecase) Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment := &entity.Treatment{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}

	if err := u.treatmentRepo.Create(u.db.WithContext(ctx), treatment); err != nil {
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetAll(ctx context.Context) ([]dto.TreatmentResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list treatments: %+v", err)
		return nil, err
	}

	return converter.TreatmentsToResponses(treatments), nil
}

func (u *treatmentUsecase) GetByID(ctx context.Context, id uint) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	if req.Name != nil {
		treatment.Name = *req.Name
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}
	if req.Price != nil {
		treatment.Price = *req.Price
	}
	if req.Duration != nil {
		treatment.Duration = *req.Duration
	}

	if err := u.treatmentRepo.Update(u.db.WithContext(ctx), treatment); err != nil {
		u.log.Warnf("Failed to update treatment %d: %+v", id, err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) Delete(ctx context.Context, id uint) error {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	return u.treatmentRepo.Delete(u.db.WithContext(ctx), id)
}

// Book is pure choreography: it looks up the treatment, forwards a
// booking request to the appointment service and relays the outcome
// augmented with the treatment's name and price. No local state changes.
func (u *treatmentUsecase) Book(ctx context.Context, id uint, req *dto.BookTreatmentRequest) (*dto.BookTreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	body, err := json.Marshal(dto.CreateAppointmentRequest{
		UserID:          req.UserID,
		TreatmentID:     id,
		AppointmentDate: req.AppointmentDate,
	})
	if err != nil {
		return nil, err
	}

	result, err := u.appointmentClient.CreateAppointment(ctx, body)
	if err != nil {
		u.log.Warnf("Booking for treatment %d failed upstream: %v", id, err)
		return nil, err
	}
	if !result.IsSuccess() {
		u.log.Warnf("Booking for treatment %d rejected with status %d", id, result.StatusCode)
		return nil, ErrBookingRejected
	}

	var created struct {
		Data struct {
			AppointmentID uint `json:"appointment_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(result.Body, &created); err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %d booked for treatment %q", created.Data.AppointmentID, treatment.Name)
	return &dto.BookTreatmentResponse{
		AppointmentID:  created.Data.AppointmentID,
		TreatmentName:  treatment.Name,
		TreatmentPrice: treatment.Price,
	}, nil
}

// SeedDefaults fills an empty catalog with the default treatments at
// first boot.
func (u *treatmentUsecase) SeedDefaults(ctx context.Context) error {
	count, err := u.treatmentRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := u.treatmentRepo.CreateBatch(u.db.WithContext(ctx), entity.DefaultTreatments()); err != nil {
		return err
	}

	u.log.Info("Default treatments added to database")
	return nil
}
