package service

import (
	"time"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
)

type UserService interface {
	GetAllUsers() ([]model.User, error)
	GetUserByID(userID uint) (*model.User, error)
	UpdateUser(userID uint, updated *model.User) (*model.User, error)
	DeactivateUser(userID uint) (*model.User, error)
	ReactivateUser(userID uint) (*model.User, error)
	UpdateUserRole(userID uint, role string) (*model.User, error)
	SearchUsers(name string) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *userService) GetUserByID(userID uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdateUser applies profile field changes. Returns the stored user, or
// an error when nothing differs.
func (s *userService) UpdateUser(userID uint, updated *model.User) (*model.User, error) {
	existing, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	hasChanges := false
	if updated.FullName != "" && updated.FullName != existing.FullName {
		existing.FullName = updated.FullName
		hasChanges = true
	}
	if updated.Email != "" && updated.Email != existing.Email {
		existing.Email = updated.Email
		hasChanges = true
	}
	if updated.PhoneNumber != "" && updated.PhoneNumber != existing.PhoneNumber {
		existing.PhoneNumber = updated.PhoneNumber
		hasChanges = true
	}
	if !hasChanges {
		return nil, apperror.MalformedSubmission("user", userID, "no fields to update")
	}

	existing.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(existing); err != nil {
		return nil, err
	}
	existing.Password = ""
	return existing, nil
}

func (s *userService) DeactivateUser(userID uint) (*model.User, error) {
	return s.setActive(userID, false)
}

func (s *userService) ReactivateUser(userID uint) (*model.User, error) {
	return s.setActive(userID, true)
}

func (s *userService) setActive(userID uint, active bool) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *userService) UpdateUserRole(userID uint, role string) (*model.User, error) {
	switch role {
	case "STUDENT", "PSYCHOLOGIST", "MANAGER":
	default:
		return nil, apperror.MalformedSubmission("user", userID, "unknown role: "+role)
	}
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *userService) SearchUsers(name string) ([]model.User, error) {
	users, err := s.userRepo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
