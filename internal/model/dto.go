package model

// QuestionAnswer is one submitted answer: the chosen option for a question.
// Ephemeral - never persisted on its own.
type QuestionAnswer struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

type SurveySubmissionRequest struct {
	StudentID    uint             `json:"student_id" binding:"required"`
	SubmissionID string           `json:"submission_id"` // optional idempotency key
	Answers      []QuestionAnswer `json:"answers" binding:"required"`
}

// ScoreOutcome is the scoring engine output. Fields that do not apply to
// the survey type stay at zero so downstream aggregation never sees nulls.
type ScoreOutcome struct {
	Depression int `json:"depression_score"`
	Anxiety    int `json:"anxiety_score"`
	Stress     int `json:"stress_score"`
	Total      int `json:"total_score"`
}

// SurveyResultResponse is the boundary shape of a persisted result.
type SurveyResultResponse struct {
	ResultID        string            `json:"result_id"`
	StudentID       uint              `json:"student_id"`
	SurveyID        uint              `json:"survey_id"`
	CreatedAt       string            `json:"created_at"` // ISO-8601
	DepressionScore int               `json:"depression_score"`
	AnxietyScore    int               `json:"anxiety_score"`
	StressScore     int               `json:"stress_score"`
	TotalScore      int               `json:"total_score"`
	SeverityLevels  map[string]string `json:"severity_levels"`
}

// PsychologicalSummary is the dashboard head-line view: latest DASS-21
// sub-scores with their severity labels, and the running mean of every
// CFQ total the student has ever recorded.
type PsychologicalSummary struct {
	StudentID             uint    `json:"student_id"`
	LatestDepressionScore int     `json:"latest_depression_score"`
	LatestAnxietyScore    int     `json:"latest_anxiety_score"`
	LatestStressScore     int     `json:"latest_stress_score"`
	DepressionSeverity    string  `json:"depression_severity"`
	AnxietySeverity       string  `json:"anxiety_severity"`
	StressSeverity        string  `json:"stress_severity"`
	CFQAverageScore       float64 `json:"cfq_average_score"`
	CFQSeverity           string  `json:"cfq_severity"`
	ResultCount           int     `json:"result_count"`
}

type SurveyHistoryEntry struct {
	ResultID        string            `json:"result_id"`
	SurveyID        uint              `json:"survey_id"`
	SurveyName      string            `json:"survey_name"`
	SurveyType      string            `json:"survey_type"`
	CompletedDate   string            `json:"completed_date"` // ISO-8601
	DepressionScore int               `json:"depression_score"`
	AnxietyScore    int               `json:"anxiety_score"`
	StressScore     int               `json:"stress_score"`
	TotalScore      int               `json:"total_score"`
	SeverityLevels  map[string]string `json:"severity_levels"`
}

// ConfirmationRequest is an appointment-booking offer for a student whose
// classified severity crossed the intervention threshold.
type ConfirmationRequest struct {
	RequestID  string            `json:"request_id"`
	StudentID  uint              `json:"student_id"`
	SurveyID   uint              `json:"survey_id"`
	ResultID   string            `json:"result_id"`
	Severities map[string]string `json:"severities"` // only the categories that triggered
}
