package db

import (
	"gorm.io/gorm"
)

// ResultStats aggregates survey-result counts for dashboard reporting.
type ResultStats struct {
	SurveyType  string `json:"survey_type"`
	ResultCount int64  `json:"result_count"`
	LastTaken   string `json:"last_taken"`
}

// StatsExecutor runs the raw aggregate queries behind the dashboard
// report footer. Reads only; results are append-only so no locking is
// needed against concurrent submissions.
type StatsExecutor struct {
	DB *gorm.DB
}

// NewStatsExecutor creates a new instance of StatsExecutor.
func NewStatsExecutor(db *gorm.DB) *StatsExecutor {
	return &StatsExecutor{DB: db}
}

// StudentResultStats returns per-survey-type result counts and the most
// recent completion timestamp for one student.
func (se *StatsExecutor) StudentResultStats(studentID uint) ([]ResultStats, error) {
	var stats []ResultStats
	query := `
		SELECT s.survey_type AS survey_type,
		       COUNT(r.id)   AS result_count,
		       TO_CHAR(MAX(r.created_at), 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS last_taken
		FROM survey_results r
		JOIN surveys s ON s.id = r.survey_id
		WHERE r.student_id = ?
		GROUP BY s.survey_type
		ORDER BY s.survey_type`
	if err := se.DB.Raw(query, studentID).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// SurveyResultCount counts the results recorded for a survey.
func (se *StatsExecutor) SurveyResultCount(surveyID uint) (int64, error) {
	var count int64
	err := se.DB.Raw(`SELECT COUNT(*) FROM survey_results WHERE survey_id = ?`, surveyID).Scan(&count).Error
	return count, err
}
