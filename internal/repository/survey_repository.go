package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

type SurveyRepository interface {
	CreateSurvey(survey *model.Survey) error
	GetAllSurveys() ([]model.Survey, error)
	GetSurveyByID(surveyID uint) (*model.Survey, error)
	GetSurveyWithQuestions(surveyID uint) (*model.Survey, error)
	SurveyExists(surveyID uint) (bool, error)
}

type surveyRepository struct{}

func NewSurveyRepository() SurveyRepository {
	return &surveyRepository{}
}

func (r *surveyRepository) CreateSurvey(survey *model.Survey) error {
	if err := db.GetDB().Create(survey).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *surveyRepository) GetAllSurveys() ([]model.Survey, error) {
	var surveys []model.Survey
	if err := db.GetDB().Find(&surveys).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return surveys, nil
}

func (r *surveyRepository) GetSurveyByID(surveyID uint) (*model.Survey, error) {
	var survey model.Survey
	err := db.GetDB().First(&survey, surveyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("survey", surveyID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &survey, nil
}

// GetSurveyWithQuestions loads the full definition: questions in survey
// order, each with its scored options.
func (r *surveyRepository) GetSurveyWithQuestions(surveyID uint) (*model.Survey, error) {
	var survey model.Survey
	err := db.GetDB().
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("survey_questions.id") }).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("survey_options.id") }).
		First(&survey, surveyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("survey", surveyID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &survey, nil
}

func (r *surveyRepository) SurveyExists(surveyID uint) (bool, error) {
	var count int64
	if err := db.GetDB().Model(&model.Survey{}).Where("id = ?", surveyID).Count(&count).Error; err != nil {
		return false, apperror.StorageFailure(err)
	}
	return count > 0, nil
}
