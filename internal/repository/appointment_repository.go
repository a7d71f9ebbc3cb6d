package repository

import (
	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type AppointmentRepository interface {
	CreateAppointment(appointment *model.Appointment) error
	FindByStudent(studentID uint) ([]model.Appointment, error)
	FindByPsychologist(psychologistID uint) ([]model.Appointment, error)
	FindAll() ([]model.Appointment, error)
	ExistsByStudentAndTimeSlot(studentID, timeSlotID uint) (bool, error)
}

type appointmentRepository struct{}

func NewAppointmentRepository() AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) CreateAppointment(appointment *model.Appointment) error {
	if err := db.GetDB().Create(appointment).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *appointmentRepository) FindByStudent(studentID uint) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := db.GetDB().Where("student_id = ?", studentID).Find(&appointments).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPsychologist(psychologistID uint) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := db.GetDB().Where("psychologist_id = ?", psychologistID).Find(&appointments).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll() ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := db.GetDB().Find(&appointments).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsByStudentAndTimeSlot(studentID, timeSlotID uint) (bool, error) {
	var count int64
	err := db.GetDB().Model(&model.Appointment{}).
		Where("student_id = ? AND time_slot_id = ?", studentID, timeSlotID).
		Count(&count).Error
	if err != nil {
		return false, apperror.StorageFailure(err)
	}
	return count > 0, nil
}
