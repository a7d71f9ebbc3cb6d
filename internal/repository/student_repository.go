package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type StudentRepository interface {
	GetStudentByID(studentID uint) (*model.Student, error)
	GetStudentByUserID(userID uint) (*model.Student, error)
	GetAllStudents() ([]model.Student, error)
	UpdateStudent(student *model.Student) error
	StudentExists(studentID uint) (bool, error)
}

type studentRepository struct{}

func NewStudentRepository() StudentRepository {
	return &studentRepository{}
}

func (r *studentRepository) GetStudentByID(studentID uint) (*model.Student, error) {
	var student model.Student
	err := db.GetDB().First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("student", studentID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &student, nil
}

func (r *studentRepository) GetStudentByUserID(userID uint) (*model.Student, error) {
	var student model.Student
	err := db.GetDB().Where("user_id = ?", userID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("student", userID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &student, nil
}

func (r *studentRepository) GetAllStudents() ([]model.Student, error) {
	var students []model.Student
	if err := db.GetDB().Find(&students).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return students, nil
}

func (r *studentRepository) UpdateStudent(student *model.Student) error {
	if err := db.GetDB().Save(student).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *studentRepository) StudentExists(studentID uint) (bool, error) {
	var count int64
	if err := db.GetDB().Model(&model.Student{}).Where("id = ?", studentID).Count(&count).Error; err != nil {
		return false, apperror.StorageFailure(err)
	}
	return count > 0, nil
}
