package service

import (
	"github.com/google/uuid"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
	"mindcare-backend/utilities"
)

// EventConfirmationRequested carries operator-approved confirmation
// requests to the appointment subsystem.
const EventConfirmationRequested = "appointment.confirmation.requested"

type EligibilityService interface {
	FindLowScoringStudents(surveyID uint) ([]model.ConfirmationRequest, error)
	ConfirmAppointmentRequests(requests []model.ConfirmationRequest) bool
}

type eligibilityService struct {
	resultRepo repository.ResultRepository
	surveyRepo repository.SurveyRepository
	bus        *utilities.EventBus

	interventionBand    string // threshold within the DASS-21 tables
	cfqInterventionBand string // threshold within the CFQ table
}

func NewEligibilityService(
	resultRepo repository.ResultRepository,
	surveyRepo repository.SurveyRepository,
	bus *utilities.EventBus,
	interventionBand, cfqInterventionBand string,
) EligibilityService {
	if interventionBand == "" {
		interventionBand = BandSevere
	}
	if cfqInterventionBand == "" {
		cfqInterventionBand = BandHigh
	}
	return &eligibilityService{
		resultRepo:          resultRepo,
		surveyRepo:          surveyRepo,
		bus:                 bus,
		interventionBand:    interventionBand,
		cfqInterventionBand: cfqInterventionBand,
	}
}

// FindLowScoringStudents - Scan every result of a survey and emit one
// confirmation request per student whose classified band for any
// applicable category meets or exceeds the intervention threshold. The
// student's most recent qualifying result wins. Returns an empty slice,
// never nil, when nobody qualifies.
func (s *eligibilityService) FindLowScoringStudents(surveyID uint) ([]model.ConfirmationRequest, error) {
	survey, err := s.surveyRepo.GetSurveyByID(surveyID)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.FindBySurvey(surveyID)
	if err != nil {
		return nil, err
	}

	// newest qualifying result per student
	picked := make(map[uint]*model.SurveyResult)
	triggered := make(map[uint]map[string]string)
	for i := range results {
		result := &results[i]
		severities := s.triggeredCategories(survey.SurveyType, result)
		if len(severities) == 0 {
			continue
		}
		prior, ok := picked[result.StudentID]
		if !ok || result.CreatedAt.After(prior.CreatedAt) ||
			(result.CreatedAt.Equal(prior.CreatedAt) && result.ID > prior.ID) {
			picked[result.StudentID] = result
			triggered[result.StudentID] = severities
		}
	}

	requests := make([]model.ConfirmationRequest, 0, len(picked))
	for studentID, result := range picked {
		requests = append(requests, model.ConfirmationRequest{
			RequestID:  uuid.New().String(),
			StudentID:  studentID,
			SurveyID:   surveyID,
			ResultID:   result.ResultID,
			Severities: triggered[studentID],
		})
	}
	return requests, nil
}

// ConfirmAppointmentRequests - Hand operator-approved requests to the
// appointment subsystem via the event bus. Returns true when at least
// one request was handed off; per-request failures are logged by the
// subscriber, not distinguished here.
func (s *eligibilityService) ConfirmAppointmentRequests(requests []model.ConfirmationRequest) bool {
	handed := 0
	for i := range requests {
		handed += s.bus.Publish(EventConfirmationRequested, requests[i])
	}
	return handed > 0
}

// triggeredCategories returns category -> label for every category of
// the result that classifies at or above the configured threshold.
func (s *eligibilityService) triggeredCategories(surveyType string, result *model.SurveyResult) map[string]string {
	severities := make(map[string]string)
	if surveyType == model.SurveyTypeDASS21 {
		checks := []struct {
			category string
			score    int
		}{
			{model.GroupDepression, result.DepressionScore},
			{model.GroupAnxiety, result.AnxietyScore},
			{model.GroupStress, result.StressScore},
		}
		for _, check := range checks {
			if AtOrAboveBand(surveyType, check.category, check.score, s.interventionBand) {
				severities[check.category] = Classify(surveyType, check.category, check.score)
			}
		}
	} else if AtOrAboveBand(model.SurveyTypeCFQ, CategoryCFQ, result.TotalScore, s.cfqInterventionBand) {
		severities[CategoryCFQ] = Classify(model.SurveyTypeCFQ, CategoryCFQ, result.TotalScore)
	}
	if len(severities) == 0 {
		return nil
	}
	return severities
}
