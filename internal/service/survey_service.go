package service

import (
	"time"

	"github.com/google/uuid"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
	"mindcare-backend/utilities"
)

// EventResultCreated is published on the global event bus after every
// persisted survey result.
const EventResultCreated = "survey.result.created"

type SurveyService interface {
	GetAllSurveys() ([]model.Survey, error)
	GetSurveyWithQuestions(surveyID uint) (*model.Survey, error)
	CreateSurvey(survey *model.Survey) error
	ProcessSubmission(surveyID uint, request *model.SurveySubmissionRequest) (*model.SurveyResultResponse, error)
}

type surveyService struct {
	surveyRepo  repository.SurveyRepository
	resultRepo  repository.ResultRepository
	studentRepo repository.StudentRepository
	bus         *utilities.EventBus

	dass21TotalIsSum bool // SCORING config: total column = sum of subscales
}

func NewSurveyService(
	surveyRepo repository.SurveyRepository,
	resultRepo repository.ResultRepository,
	studentRepo repository.StudentRepository,
	bus *utilities.EventBus,
	dass21TotalIsSum bool,
) SurveyService {
	return &surveyService{
		surveyRepo:       surveyRepo,
		resultRepo:       resultRepo,
		studentRepo:      studentRepo,
		bus:              bus,
		dass21TotalIsSum: dass21TotalIsSum,
	}
}

// GetAllSurveys - Fetch all survey definitions
func (s *surveyService) GetAllSurveys() ([]model.Survey, error) {
	return s.surveyRepo.GetAllSurveys()
}

// GetSurveyWithQuestions - Fetch one survey with questions and options
func (s *surveyService) GetSurveyWithQuestions(surveyID uint) (*model.Survey, error) {
	return s.surveyRepo.GetSurveyWithQuestions(surveyID)
}

// CreateSurvey - Store a new survey definition (admin path). Definitions
// are immutable once results reference them.
func (s *surveyService) CreateSurvey(survey *model.Survey) error {
	if survey.SurveyType != model.SurveyTypeDASS21 && survey.SurveyType != model.SurveyTypeCFQ {
		return apperror.MalformedSubmission("survey", survey.SurveyName, "unknown survey type")
	}
	return s.surveyRepo.CreateSurvey(survey)
}

// ProcessSubmission - Score a student's answers and persist the result.
// Scoring itself is pure (scoring.go); this method owns the side effects:
// idempotency lookup, the append-only write, and the created event.
func (s *surveyService) ProcessSubmission(surveyID uint, request *model.SurveySubmissionRequest) (*model.SurveyResultResponse, error) {
	exists, err := s.studentRepo.StudentExists(request.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("student", request.StudentID)
	}

	// A retried delivery with the same submission id returns the row the
	// first delivery created instead of writing a duplicate.
	if request.SubmissionID != "" {
		if prior, err := s.resultRepo.FindBySubmissionID(request.SubmissionID); err == nil {
			return s.toResultResponse(prior), nil
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	survey, err := s.surveyRepo.GetSurveyWithQuestions(surveyID)
	if err != nil {
		return nil, err
	}

	outcome, err := ScoreSubmission(survey, request.Answers, s.dass21TotalIsSum)
	if err != nil {
		return nil, err
	}

	result := &model.SurveyResult{
		ResultID:        uuid.New().String(),
		StudentID:       request.StudentID,
		SurveyID:        survey.ID,
		DepressionScore: outcome.Depression,
		AnxietyScore:    outcome.Anxiety,
		StressScore:     outcome.Stress,
		TotalScore:      outcome.Total,
		CreatedAt:       time.Now(),
	}
	if request.SubmissionID != "" {
		result.SubmissionID = &request.SubmissionID
	}

	if err := s.resultRepo.Create(result); err != nil {
		return nil, err
	}

	s.bus.Publish(EventResultCreated, result)

	return s.toResultResponse(result), nil
}

func (s *surveyService) toResultResponse(result *model.SurveyResult) *model.SurveyResultResponse {
	surveyType := model.SurveyTypeCFQ
	if survey, err := s.surveyRepo.GetSurveyByID(result.SurveyID); err == nil {
		surveyType = survey.SurveyType
	}
	return &model.SurveyResultResponse{
		ResultID:        result.ResultID,
		StudentID:       result.StudentID,
		SurveyID:        result.SurveyID,
		CreatedAt:       result.CreatedAt.UTC().Format(time.RFC3339),
		DepressionScore: result.DepressionScore,
		AnxietyScore:    result.AnxietyScore,
		StressScore:     result.StressScore,
		TotalScore:      result.TotalScore,
		SeverityLevels:  SeverityLevels(surveyType, result),
	}
}
