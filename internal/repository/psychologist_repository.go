package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type PsychologistRepository interface {
	GetPsychologistByID(id uint) (*model.Psychologist, error)
	GetPsychologistByUserID(userID uint) (*model.Psychologist, error)
	GetAllPsychologists() ([]model.Psychologist, error)
	GetPsychologistsByDepartment(departmentID uint) ([]model.Psychologist, error)
	UpdatePsychologist(psychologist *model.Psychologist) error

	GetKPI(psychologistID uint, month, year int) (*model.PsychologistKPI, error)
	SaveKPI(kpi *model.PsychologistKPI) error
}

type psychologistRepository struct{}

func NewPsychologistRepository() PsychologistRepository {
	return &psychologistRepository{}
}

func (r *psychologistRepository) GetPsychologistByID(id uint) (*model.Psychologist, error) {
	var psychologist model.Psychologist
	err := db.GetDB().First(&psychologist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("psychologist", id)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &psychologist, nil
}

func (r *psychologistRepository) GetPsychologistByUserID(userID uint) (*model.Psychologist, error) {
	var psychologist model.Psychologist
	err := db.GetDB().Where("user_id = ?", userID).First(&psychologist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("psychologist", userID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &psychologist, nil
}

func (r *psychologistRepository) GetAllPsychologists() ([]model.Psychologist, error) {
	var psychologists []model.Psychologist
	if err := db.GetDB().Find(&psychologists).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return psychologists, nil
}

func (r *psychologistRepository) GetPsychologistsByDepartment(departmentID uint) ([]model.Psychologist, error) {
	var psychologists []model.Psychologist
	if err := db.GetDB().Where("department_id = ?", departmentID).Find(&psychologists).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return psychologists, nil
}

func (r *psychologistRepository) UpdatePsychologist(psychologist *model.Psychologist) error {
	if err := db.GetDB().Save(psychologist).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *psychologistRepository) GetKPI(psychologistID uint, month, year int) (*model.PsychologistKPI, error) {
	var kpi model.PsychologistKPI
	err := db.GetDB().
		Where("psychologist_id = ? AND month = ? AND year = ?", psychologistID, month, year).
		First(&kpi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("psychologist KPI", psychologistID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &kpi, nil
}

func (r *psychologistRepository) SaveKPI(kpi *model.PsychologistKPI) error {
	if err := db.GetDB().Save(kpi).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}
