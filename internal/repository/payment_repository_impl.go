package repository

import (
	"errors"

	"github.com/glowcare/clinic/internal/domain/entity"
	domainRepo "github.com/glowcare/clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uint) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// FindByAppointmentID returns at most one payment; the uniqueness of
// appointment_id is checked at creation time.
func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByUserID(db *gorm.DB, userID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Save(payment).Error
}
