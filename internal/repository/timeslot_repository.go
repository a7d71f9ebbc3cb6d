package repository

import (
	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type TimeSlotRepository interface {
	CountDefaultSlots() (int64, error)
	SaveDefaultSlots(slots []model.DefaultTimeSlot) error
	GetDefaultSlots() ([]model.DefaultTimeSlot, error)
	GetDefaultSlotsByIDs(slotIDs []string) ([]model.DefaultTimeSlot, error)

	SaveTimeSlots(slots []model.TimeSlot) error
	SlotExists(psychologistID uint, slotDate, startTime, endTime string) (bool, error)
	FindByPsychologist(psychologistID uint) ([]model.TimeSlot, error)
	FindByPsychologistAndDate(psychologistID uint, slotDate string) ([]model.TimeSlot, error)
	FindAllSlots() ([]model.TimeSlot, error)
}

type timeSlotRepository struct{}

func NewTimeSlotRepository() TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) CountDefaultSlots() (int64, error) {
	var count int64
	if err := db.GetDB().Model(&model.DefaultTimeSlot{}).Count(&count).Error; err != nil {
		return 0, apperror.StorageFailure(err)
	}
	return count, nil
}

func (r *timeSlotRepository) SaveDefaultSlots(slots []model.DefaultTimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	if err := db.GetDB().Create(&slots).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *timeSlotRepository) GetDefaultSlots() ([]model.DefaultTimeSlot, error) {
	var slots []model.DefaultTimeSlot
	if err := db.GetDB().Order("slot_id").Find(&slots).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return slots, nil
}

func (r *timeSlotRepository) GetDefaultSlotsByIDs(slotIDs []string) ([]model.DefaultTimeSlot, error) {
	var slots []model.DefaultTimeSlot
	if err := db.GetDB().Where("slot_id IN ?", slotIDs).Find(&slots).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return slots, nil
}

func (r *timeSlotRepository) SaveTimeSlots(slots []model.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	if err := db.GetDB().Create(&slots).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *timeSlotRepository) SlotExists(psychologistID uint, slotDate, startTime, endTime string) (bool, error) {
	var count int64
	err := db.GetDB().Model(&model.TimeSlot{}).
		Where("psychologist_id = ? AND slot_date = ? AND start_time = ? AND end_time = ?",
			psychologistID, slotDate, startTime, endTime).
		Count(&count).Error
	if err != nil {
		return false, apperror.StorageFailure(err)
	}
	return count > 0, nil
}

func (r *timeSlotRepository) FindByPsychologist(psychologistID uint) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := db.GetDB().Where("psychologist_id = ?", psychologistID).Find(&slots).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return slots, nil
}

func (r *timeSlotRepository) FindByPsychologistAndDate(psychologistID uint, slotDate string) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := db.GetDB().
		Where("psychologist_id = ? AND slot_date = ?", psychologistID, slotDate).
		Find(&slots).Error
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return slots, nil
}

func (r *timeSlotRepository) FindAllSlots() ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := db.GetDB().Find(&slots).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return slots, nil
}
