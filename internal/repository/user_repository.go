package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(userID uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetAllUsers() ([]model.User, error)
	UpdateUser(user *model.User) error
	SearchByName(name string) ([]model.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) CreateUser(user *model.User) error {
	if err := db.GetDB().Create(user).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *userRepository) GetUserByID(userID uint) (*model.User, error) {
	var user model.User
	err := db.GetDB().First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user", userID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := db.GetDB().Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user", email)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers() ([]model.User, error) {
	var users []model.User
	if err := db.GetDB().Find(&users).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return users, nil
}

func (r *userRepository) UpdateUser(user *model.User) error {
	if err := db.GetDB().Save(user).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *userRepository) SearchByName(name string) ([]model.User, error) {
	var users []model.User
	if err := db.GetDB().Where("full_name ILIKE ?", "%"+name+"%").Find(&users).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return users, nil
}
