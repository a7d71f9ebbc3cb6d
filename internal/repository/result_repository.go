package repository

import (
	"errors"

	"gorm.io/gorm"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
)

// ResultRepository is append-only: results are never updated or deleted,
// so reads never need to lock against concurrent submissions.
type ResultRepository interface {
	Create(result *model.SurveyResult) error
	FindByStudent(studentID uint) ([]model.SurveyResult, error)
	FindBySurvey(surveyID uint) ([]model.SurveyResult, error)
	FindBySubmissionID(submissionID string) (*model.SurveyResult, error)
}

type resultRepository struct{}

func NewResultRepository() ResultRepository {
	return &resultRepository{}
}

func (r *resultRepository) Create(result *model.SurveyResult) error {
	if err := db.GetDB().Create(result).Error; err != nil {
		return apperror.StorageFailure(err)
	}
	return nil
}

func (r *resultRepository) FindByStudent(studentID uint) ([]model.SurveyResult, error) {
	var results []model.SurveyResult
	if err := db.GetDB().Where("student_id = ?", studentID).Find(&results).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return results, nil
}

func (r *resultRepository) FindBySurvey(surveyID uint) ([]model.SurveyResult, error) {
	var results []model.SurveyResult
	if err := db.GetDB().Where("survey_id = ?", surveyID).Find(&results).Error; err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return results, nil
}

// FindBySubmissionID resolves a client idempotency key to the row the
// first delivery created. Not-found is reported with the key itself.
func (r *resultRepository) FindBySubmissionID(submissionID string) (*model.SurveyResult, error) {
	var result model.SurveyResult
	err := db.GetDB().Where("submission_id = ?", submissionID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("survey result", submissionID)
	}
	if err != nil {
		return nil, apperror.StorageFailure(err)
	}
	return &result, nil
}
