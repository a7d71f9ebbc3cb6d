package service

import (
	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
)

// In-memory repository fakes. The gorm-backed implementations talk to a
// global handle, so service tests swap in these instead of a database.

type fakeSurveyRepo struct {
	surveys []model.Survey
}

func (f *fakeSurveyRepo) CreateSurvey(survey *model.Survey) error {
	if survey.ID == 0 {
		survey.ID = uint(len(f.surveys) + 1)
	}
	f.surveys = append(f.surveys, *survey)
	return nil
}

func (f *fakeSurveyRepo) GetAllSurveys() ([]model.Survey, error) {
	return append([]model.Survey(nil), f.surveys...), nil
}

func (f *fakeSurveyRepo) GetSurveyByID(surveyID uint) (*model.Survey, error) {
	for i := range f.surveys {
		if f.surveys[i].ID == surveyID {
			return &f.surveys[i], nil
		}
	}
	return nil, apperror.NotFound("survey", surveyID)
}

func (f *fakeSurveyRepo) GetSurveyWithQuestions(surveyID uint) (*model.Survey, error) {
	return f.GetSurveyByID(surveyID)
}

func (f *fakeSurveyRepo) SurveyExists(surveyID uint) (bool, error) {
	_, err := f.GetSurveyByID(surveyID)
	return err == nil, nil
}

type fakeResultRepo struct {
	results []model.SurveyResult
}

func (f *fakeResultRepo) Create(result *model.SurveyResult) error {
	if result.ID == 0 {
		result.ID = uint(len(f.results) + 1)
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultRepo) FindByStudent(studentID uint) ([]model.SurveyResult, error) {
	var out []model.SurveyResult
	for _, r := range f.results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) FindBySurvey(surveyID uint) ([]model.SurveyResult, error) {
	var out []model.SurveyResult
	for _, r := range f.results {
		if r.SurveyID == surveyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) FindBySubmissionID(submissionID string) (*model.SurveyResult, error) {
	for i := range f.results {
		if f.results[i].SubmissionID != nil && *f.results[i].SubmissionID == submissionID {
			return &f.results[i], nil
		}
	}
	return nil, apperror.NotFound("survey result", submissionID)
}

type fakeStudentRepo struct {
	students map[uint]model.Student
}

func (f *fakeStudentRepo) GetStudentByID(studentID uint) (*model.Student, error) {
	if s, ok := f.students[studentID]; ok {
		return &s, nil
	}
	return nil, apperror.NotFound("student", studentID)
}

func (f *fakeStudentRepo) GetStudentByUserID(userID uint) (*model.Student, error) {
	for _, s := range f.students {
		if s.UserID == userID {
			return &s, nil
		}
	}
	return nil, apperror.NotFound("student", userID)
}

func (f *fakeStudentRepo) GetAllStudents() ([]model.Student, error) {
	var out []model.Student
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentRepo) UpdateStudent(student *model.Student) error {
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) StudentExists(studentID uint) (bool, error) {
	_, ok := f.students[studentID]
	return ok, nil
}

type fakeTimeSlotRepo struct {
	defaults []model.DefaultTimeSlot
	slots    []model.TimeSlot
}

func (f *fakeTimeSlotRepo) CountDefaultSlots() (int64, error) {
	return int64(len(f.defaults)), nil
}

func (f *fakeTimeSlotRepo) SaveDefaultSlots(slots []model.DefaultTimeSlot) error {
	f.defaults = append(f.defaults, slots...)
	return nil
}

func (f *fakeTimeSlotRepo) GetDefaultSlots() ([]model.DefaultTimeSlot, error) {
	return append([]model.DefaultTimeSlot(nil), f.defaults...), nil
}

func (f *fakeTimeSlotRepo) GetDefaultSlotsByIDs(slotIDs []string) ([]model.DefaultTimeSlot, error) {
	var out []model.DefaultTimeSlot
	for _, id := range slotIDs {
		for _, d := range f.defaults {
			if d.SlotID == id {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func (f *fakeTimeSlotRepo) SaveTimeSlots(slots []model.TimeSlot) error {
	for i := range slots {
		slots[i].ID = uint(len(f.slots) + 1)
		f.slots = append(f.slots, slots[i])
	}
	return nil
}

func (f *fakeTimeSlotRepo) SlotExists(psychologistID uint, slotDate, startTime, endTime string) (bool, error) {
	for _, s := range f.slots {
		if s.PsychologistID == psychologistID && s.SlotDate == slotDate &&
			s.StartTime == startTime && s.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTimeSlotRepo) FindByPsychologist(psychologistID uint) ([]model.TimeSlot, error) {
	var out []model.TimeSlot
	for _, s := range f.slots {
		if s.PsychologistID == psychologistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeTimeSlotRepo) FindByPsychologistAndDate(psychologistID uint, slotDate string) ([]model.TimeSlot, error) {
	var out []model.TimeSlot
	for _, s := range f.slots {
		if s.PsychologistID == psychologistID && s.SlotDate == slotDate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeTimeSlotRepo) FindAllSlots() ([]model.TimeSlot, error) {
	return append([]model.TimeSlot(nil), f.slots...), nil
}

type kpiKey struct {
	psychologistID uint
	month, year    int
}

type fakePsychologistRepo struct {
	psychologists map[uint]model.Psychologist
	kpis          map[kpiKey]model.PsychologistKPI
}

func (f *fakePsychologistRepo) GetPsychologistByID(id uint) (*model.Psychologist, error) {
	if p, ok := f.psychologists[id]; ok {
		return &p, nil
	}
	return nil, apperror.NotFound("psychologist", id)
}

func (f *fakePsychologistRepo) GetPsychologistByUserID(userID uint) (*model.Psychologist, error) {
	for _, p := range f.psychologists {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, apperror.NotFound("psychologist", userID)
}

func (f *fakePsychologistRepo) GetAllPsychologists() ([]model.Psychologist, error) {
	var out []model.Psychologist
	for _, p := range f.psychologists {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePsychologistRepo) GetPsychologistsByDepartment(departmentID uint) ([]model.Psychologist, error) {
	var out []model.Psychologist
	for _, p := range f.psychologists {
		if p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePsychologistRepo) UpdatePsychologist(psychologist *model.Psychologist) error {
	f.psychologists[psychologist.ID] = *psychologist
	return nil
}

func (f *fakePsychologistRepo) GetKPI(psychologistID uint, month, year int) (*model.PsychologistKPI, error) {
	if kpi, ok := f.kpis[kpiKey{psychologistID, month, year}]; ok {
		return &kpi, nil
	}
	return nil, apperror.NotFound("psychologist KPI", psychologistID)
}

func (f *fakePsychologistRepo) SaveKPI(kpi *model.PsychologistKPI) error {
	if f.kpis == nil {
		f.kpis = make(map[kpiKey]model.PsychologistKPI)
	}
	f.kpis[kpiKey{kpi.PsychologistID, kpi.Month, kpi.Year}] = *kpi
	return nil
}

type fakeDepartmentRepo struct {
	departments map[uint]model.Department
}

func (f *fakeDepartmentRepo) GetDepartmentByID(id uint) (*model.Department, error) {
	if d, ok := f.departments[id]; ok {
		return &d, nil
	}
	return nil, apperror.NotFound("department", id)
}

func (f *fakeDepartmentRepo) GetAllDepartments() ([]model.Department, error) {
	var out []model.Department
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) DepartmentExists(id uint) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}

func (f *fakeDepartmentRepo) CreateDepartment(department *model.Department) error {
	if f.departments == nil {
		f.departments = make(map[uint]model.Department)
	}
	f.departments[department.ID] = *department
	return nil
}

type fakeAppointmentRepo struct {
	appointments []model.Appointment
}

func (f *fakeAppointmentRepo) CreateAppointment(appointment *model.Appointment) error {
	appointment.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByStudent(studentID uint) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range f.appointments {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByPsychologist(psychologistID uint) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range f.appointments {
		if a.PsychologistID == psychologistID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAll() ([]model.Appointment, error) {
	return append([]model.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentRepo) ExistsByStudentAndTimeSlot(studentID, timeSlotID uint) (bool, error) {
	for _, a := range f.appointments {
		if a.StudentID == studentID && a.TimeSlotID != nil && *a.TimeSlotID == timeSlotID {
			return true, nil
		}
	}
	return false, nil
}
