package repository

import (
	"errors"

	"github.com/glowcare/clinic/internal/domain/entity"
	domainRepo "github.com/glowcare/clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

func (r *treatmentRepository) Create(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Create(treatment).Error
}

func (r *treatmentRepository) CreateBatch(db *gorm.DB, treatments []entity.Treatment) error {
	return db.Create(&treatments).Error
}

func (r *treatmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := db.Where("id = ?", id).First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) FindAll(db *gorm.DB) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	err := db.Order("id").Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) Update(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Save(treatment).Error
}

func (r *treatmentRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.Treatment{}, id).Error
}

func (r *treatmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Treatment{}).Count(&count).Error
	return count, err
}
