package repository

import (
	"errors"

	"github.com/glowcare/clinic/internal/domain/entity"
	domainRepo "github.com/glowcare/clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type confirmationOutboxRepository struct{}

func NewConfirmationOutboxRepository() domainRepo.ConfirmationOutboxRepository {
	return &confirmationOutboxRepository{}
}

func (r *confirmationOutboxRepository) Create(db *gorm.DB, record *entity.ConfirmationOutbox) error {
	return db.Create(record).Error
}

func (r *confirmationOutboxRepository) FindPending(db *gorm.DB, limit int) ([]entity.ConfirmationOutbox, error) {
	var records []entity.ConfirmationOutbox
	err := db.Where("status = ?", entity.OutboxStatusPending).
		Order("created_at").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *confirmationOutboxRepository) FindByPaymentID(db *gorm.DB, paymentID uint) (*entity.ConfirmationOutbox, error) {
	var record entity.ConfirmationOutbox
	err := db.Where("payment_id = ?", paymentID).Order("created_at DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *confirmationOutboxRepository) Update(db *gorm.DB, record *entity.ConfirmationOutbox) error {
	return db.Save(record).Error
}
