package service

import (
	"time"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
)

type StudentService interface {
	GetStudentByID(studentID uint) (*model.Student, error)
	UpdateStudent(studentID uint, request *model.Student) (*model.Student, error)
	StudentExists(studentID uint) (bool, error)
	GetStudentSurveys(studentID uint) ([]model.Survey, error)
	GetPendingSurveys(studentID uint) ([]model.Survey, error)
	GetAppointments(studentID uint) ([]model.Appointment, error)
	GetUpcomingAppointments(studentID uint) ([]model.Appointment, error)
}

type studentService struct {
	studentRepo     repository.StudentRepository
	surveyRepo      repository.SurveyRepository
	resultRepo      repository.ResultRepository
	appointmentRepo repository.AppointmentRepository
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	surveyRepo repository.SurveyRepository,
	resultRepo repository.ResultRepository,
	appointmentRepo repository.AppointmentRepository,
) StudentService {
	return &studentService{
		studentRepo:     studentRepo,
		surveyRepo:      surveyRepo,
		resultRepo:      resultRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (s *studentService) GetStudentByID(studentID uint) (*model.Student, error) {
	return s.studentRepo.GetStudentByID(studentID)
}

func (s *studentService) StudentExists(studentID uint) (bool, error) {
	return s.studentRepo.StudentExists(studentID)
}

func (s *studentService) UpdateStudent(studentID uint, request *model.Student) (*model.Student, error) {
	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	if request.Grade != 0 {
		student.Grade = request.Grade
	}
	if request.ClassName != "" {
		student.ClassName = request.ClassName
	}
	if err := s.studentRepo.UpdateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentSurveys - All survey definitions available to the student.
func (s *studentService) GetStudentSurveys(studentID uint) ([]model.Survey, error) {
	return s.surveyRepo.GetAllSurveys()
}

// GetPendingSurveys - Definitions the student has not submitted yet.
func (s *studentService) GetPendingSurveys(studentID uint) ([]model.Survey, error) {
	surveys, err := s.surveyRepo.GetAllSurveys()
	if err != nil {
		return nil, err
	}
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	taken := make(map[uint]bool, len(results))
	for _, r := range results {
		taken[r.SurveyID] = true
	}
	pending := make([]model.Survey, 0, len(surveys))
	for _, survey := range surveys {
		if !taken[survey.ID] {
			pending = append(pending, survey)
		}
	}
	return pending, nil
}

func (s *studentService) GetAppointments(studentID uint) ([]model.Appointment, error) {
	return s.appointmentRepo.FindByStudent(studentID)
}

// GetUpcomingAppointments - Pending or confirmed appointments created in
// the last 30 days or scheduled ahead.
func (s *studentService) GetUpcomingAppointments(studentID uint) ([]model.Appointment, error) {
	appointments, err := s.appointmentRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -30)
	upcoming := make([]model.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Status == "CANCELLED" || appt.Status == "COMPLETED" {
			continue
		}
		if appt.CreatedAt.After(cutoff) {
			upcoming = append(upcoming, appt)
		}
	}
	return upcoming, nil
}
