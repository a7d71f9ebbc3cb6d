package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type DepartmentRepository interface {
	GetDepartmentByID(id uint) (*model.Department, error)
	GetAllDepartments() ([]model.Department, error)
	DepartmentExists(id uint) (bool, error)
	CreateDepartment(department *model.Department) error
}

type departmentRepository struct{}

func NewDepartmentRepository() DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) GetDepartmentByID(id uint) (*model.Department, error) {
	var department model.Department
	err := db.GetDB().First(&department, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("department", id)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &department, nil
}

func (r *departmentRepository) GetAllDepartments() ([]model.Department, error) {
	var departments []model.Department
	if err := db.GetDB().Find(&departments).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return departments, nil
}

func (r *departmentRepository) DepartmentExists(id uint) (bool, error) {
	var count int64
	if err := db.GetDB().Model(&model.Department{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperror.StorageFailure(err)
	}
	return count > 0, nil
}

func (r *departmentRepository) CreateDepartment(department *model.Department) error {
	if err := db.GetDB().Create(department).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}
