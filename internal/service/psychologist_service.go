package service

import (
	"fmt"
	"time"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
)

type PsychologistService interface {
	GetAllPsychologists() ([]model.Psychologist, error)
	GetPsychologistByID(id uint) (*model.Psychologist, error)
	GetPsychologistByUserID(userID uint) (*model.Psychologist, error)
	GetPsychologistsByDepartment(departmentID uint) ([]model.Psychologist, error)
	UpdatePsychologist(id uint, request *model.Psychologist, currentUserID uint) (*model.Psychologist, error)

	EnsureDefaultSlots() error
	GetDefaultTimeSlots() ([]model.DefaultTimeSlot, error)
	CreateTimeSlotsFromDefaults(psychologistID uint, slotDate string, defaultSlotIDs []string) ([]model.TimeSlot, error)
	GetPsychologistTimeSlots(psychologistID uint, slotDate string, studentID uint) ([]TimeSlotView, error)

	IncreaseAchievedSlots(psychologistID uint, slotDate time.Time) error
	DecreaseAchievedSlots(psychologistID uint, slotDate time.Time) error
}

// TimeSlotView decorates a slot with the requesting student's booked flag.
type TimeSlotView struct {
	model.TimeSlot
	Booked bool `json:"booked"`
}

type psychologistService struct {
	psychologistRepo repository.PsychologistRepository
	departmentRepo   repository.DepartmentRepository
	timeSlotRepo     repository.TimeSlotRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewPsychologistService(
	psychologistRepo repository.PsychologistRepository,
	departmentRepo repository.DepartmentRepository,
	timeSlotRepo repository.TimeSlotRepository,
	appointmentRepo repository.AppointmentRepository,
) PsychologistService {
	return &psychologistService{
		psychologistRepo: psychologistRepo,
		departmentRepo:   departmentRepo,
		timeSlotRepo:     timeSlotRepo,
		appointmentRepo:  appointmentRepo,
	}
}

func (s *psychologistService) GetAllPsychologists() ([]model.Psychologist, error) {
	return s.psychologistRepo.GetAllPsychologists()
}

func (s *psychologistService) GetPsychologistByID(id uint) (*model.Psychologist, error) {
	return s.psychologistRepo.GetPsychologistByID(id)
}

func (s *psychologistService) GetPsychologistByUserID(userID uint) (*model.Psychologist, error) {
	return s.psychologistRepo.GetPsychologistByUserID(userID)
}

func (s *psychologistService) GetPsychologistsByDepartment(departmentID uint) ([]model.Psychologist, error) {
	exists, err := s.departmentRepo.DepartmentExists(departmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("department", departmentID)
	}
	return s.psychologistRepo.GetPsychologistsByDepartment(departmentID)
}

func (s *psychologistService) UpdatePsychologist(id uint, request *model.Psychologist, currentUserID uint) (*model.Psychologist, error) {
	psychologist, err := s.psychologistRepo.GetPsychologistByID(id)
	if err != nil {
		return nil, err
	}
	if psychologist.UserID != currentUserID {
		return nil, apperror.Forbidden("psychologist", id, "profile can only be updated by its owner")
	}
	if request.DepartmentID == 0 && request.YearsOfExperience == 0 {
		return nil, apperror.MalformedSubmission("psychologist", id, "no fields to update")
	}
	if request.DepartmentID != 0 && request.DepartmentID != psychologist.DepartmentID {
		exists, err := s.departmentRepo.DepartmentExists(request.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NotFound("department", request.DepartmentID)
		}
		psychologist.DepartmentID = request.DepartmentID
	}
	if request.YearsOfExperience != 0 && request.YearsOfExperience != psychologist.YearsOfExperience {
		psychologist.YearsOfExperience = request.YearsOfExperience
	}
	if err := s.psychologistRepo.UpdatePsychologist(psychologist); err != nil {
		return nil, err
	}
	return psychologist, nil
}

// EnsureDefaultSlots seeds the half-hour default grid once: morning
// 08:00-11:00 and afternoon 13:00-17:00.
func (s *psychologistService) EnsureDefaultSlots() error {
	count, err := s.timeSlotRepo.CountDefaultSlots()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var slots []model.DefaultTimeSlot
	slots = append(slots, buildDefaultSlots("MORNING", "Morning", 8*60, 11*60)...)
	slots = append(slots, buildDefaultSlots("AFTERNOON", "Afternoon", 13*60, 17*60)...)
	return s.timeSlotRepo.SaveDefaultSlots(slots)
}

func buildDefaultSlots(prefix, period string, startMin, endMin int) []model.DefaultTimeSlot {
	var slots []model.DefaultTimeSlot
	for i, m := 0, startMin; m < endMin; i, m = i+1, m+30 {
		slots = append(slots, model.DefaultTimeSlot{
			SlotID:    fmt.Sprintf("%s-%02d", prefix, i),
			StartTime: fmt.Sprintf("%02d:%02d", m/60, m%60),
			EndTime:   fmt.Sprintf("%02d:%02d", (m+30)/60, (m+30)%60),
			Period:    period,
		})
	}
	return slots
}

func (s *psychologistService) GetDefaultTimeSlots() ([]model.DefaultTimeSlot, error) {
	return s.timeSlotRepo.GetDefaultSlots()
}

// CreateTimeSlotsFromDefaults materializes concrete slots for one
// psychologist and date from the default grid, skipping slots that
// already exist.
func (s *psychologistService) CreateTimeSlotsFromDefaults(psychologistID uint, slotDate string, defaultSlotIDs []string) ([]model.TimeSlot, error) {
	psychologist, err := s.psychologistRepo.GetPsychologistByID(psychologistID)
	if err != nil {
		return nil, err
	}

	defaults, err := s.timeSlotRepo.GetDefaultSlotsByIDs(defaultSlotIDs)
	if err != nil {
		return nil, err
	}
	if len(defaults) != len(defaultSlotIDs) {
		return nil, apperror.NotFound("default time slot", defaultSlotIDs)
	}

	var newSlots []model.TimeSlot
	for _, def := range defaults {
		exists, err := s.timeSlotRepo.SlotExists(psychologist.ID, slotDate, def.StartTime, def.EndTime)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		newSlots = append(newSlots, model.TimeSlot{
			SlotCode:       fmt.Sprintf("TS-%d-%s-%s", psychologist.ID, slotDate, def.SlotID),
			PsychologistID: psychologist.ID,
			SlotDate:       slotDate,
			StartTime:      def.StartTime,
			EndTime:        def.EndTime,
			MaxCapacity:    3, // Default capacity
			Status:         "AVAILABLE",
		})
	}

	if err := s.timeSlotRepo.SaveTimeSlots(newSlots); err != nil {
		return nil, err
	}
	return newSlots, nil
}

// GetPsychologistTimeSlots - Slots filtered by psychologist and/or date,
// each flagged with whether studentID already booked it.
func (s *psychologistService) GetPsychologistTimeSlots(psychologistID uint, slotDate string, studentID uint) ([]TimeSlotView, error) {
	var slots []model.TimeSlot
	var err error

	switch {
	case psychologistID != 0 && slotDate != "":
		slots, err = s.timeSlotRepo.FindByPsychologistAndDate(psychologistID, slotDate)
	case psychologistID != 0:
		slots, err = s.timeSlotRepo.FindByPsychologist(psychologistID)
	default:
		slots, err = s.timeSlotRepo.FindAllSlots()
	}
	if err != nil {
		return nil, err
	}

	views := make([]TimeSlotView, 0, len(slots))
	for _, slot := range slots {
		booked := false
		if studentID != 0 {
			booked, err = s.appointmentRepo.ExistsByStudentAndTimeSlot(studentID, slot.ID)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, TimeSlotView{TimeSlot: slot, Booked: booked})
	}
	return views, nil
}

func (s *psychologistService) IncreaseAchievedSlots(psychologistID uint, slotDate time.Time) error {
	kpi, err := s.psychologistRepo.GetKPI(psychologistID, int(slotDate.Month()), slotDate.Year())
	if err != nil {
		return err
	}
	kpi.AchievedSlots++
	return s.psychologistRepo.SaveKPI(kpi)
}

// DecreaseAchievedSlots floors at zero and tolerates a missing KPI row.
func (s *psychologistService) DecreaseAchievedSlots(psychologistID uint, slotDate time.Time) error {
	kpi, err := s.psychologistRepo.GetKPI(psychologistID, int(slotDate.Month()), slotDate.Year())
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if kpi.AchievedSlots > 0 {
		kpi.AchievedSlots--
	}
	return s.psychologistRepo.SaveKPI(kpi)
}
