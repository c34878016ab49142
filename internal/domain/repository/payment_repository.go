package repository

import (
	"github.com/glowcare/clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uint) (*entity.Payment, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.Payment, error)
	FindAll(db *gorm.DB) ([]entity.Payment, error)
	FindByUserID(db *gorm.DB, userID uint) ([]entity.Payment, error)
	Update(db *gorm.DB, payment *entity.Payment) error
}
