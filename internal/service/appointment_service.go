package service

import (
	"fmt"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
	"mindcare-backend/utilities"
)

type AppointmentService interface {
	GetStudentAppointments(studentID uint) ([]model.Appointment, error)
	GetPsychologistAppointments(psychologistID uint) ([]model.Appointment, error)
	GetAllAppointments() ([]model.Appointment, error)
	RegisterConfirmationListener(bus *utilities.EventBus)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo}
}

func (s *appointmentService) GetStudentAppointments(studentID uint) ([]model.Appointment, error) {
	return s.appointmentRepo.FindByStudent(studentID)
}

func (s *appointmentService) GetPsychologistAppointments(psychologistID uint) ([]model.Appointment, error) {
	return s.appointmentRepo.FindByPsychologist(psychologistID)
}

func (s *appointmentService) GetAllAppointments() ([]model.Appointment, error) {
	return s.appointmentRepo.FindAll()
}

// RegisterConfirmationListener subscribes the booking-offer handler:
// each confirmed eligibility request becomes a pending appointment that
// the scheduling side picks up. Booking mechanics stay outside this
// service.
func (s *appointmentService) RegisterConfirmationListener(bus *utilities.EventBus) {
	bus.Subscribe(EventConfirmationRequested, func(data interface{}) {
		request, ok := data.(model.ConfirmationRequest)
		if !ok {
			utilities.Warn("confirmation listener: unexpected payload %T", data)
			return
		}
		appointment := &model.Appointment{
			StudentID: request.StudentID,
			Status:    "PENDING",
			Notes:     fmt.Sprintf("Auto-offer from survey %d result %s", request.SurveyID, request.ResultID),
		}
		if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
			utilities.Error("confirmation listener: failed to create offer for student %d: %v", request.StudentID, err)
			return
		}
		utilities.Info("appointment offer created for student %d (request %s)", request.StudentID, request.RequestID)
	})
}
