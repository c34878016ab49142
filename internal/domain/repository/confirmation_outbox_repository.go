package repository

import (
	"github.com/glowcare/clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type ConfirmationOutboxRepository interface {
	Create(db *gorm.DB, record *entity.ConfirmationOutbox) error
	FindPending(db *gorm.DB, limit int) ([]entity.ConfirmationOutbox, error)
	FindByPaymentID(db *gorm.DB, paymentID uint) (*entity.ConfirmationOutbox, error)
	Update(db *gorm.DB, record *entity.ConfirmationOutbox) error
}
