package model

import "time"

// Survey type discriminator. Dispatches scoring and severity lookup.
const (
	SurveyTypeDASS21 = "DASS21"
	SurveyTypeCFQ    = "CFQ"
)

// DASS-21 question groups. CFQ questions carry an empty group.
const (
	GroupDepression = "Depression"
	GroupAnxiety    = "Anxiety"
	GroupStress     = "Stress"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"password,omitempty"` // Exclude from JSON responses
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role" gorm:"default:'STUDENT'"` // STUDENT, PSYCHOLOGIST, MANAGER
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Student struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	Grade     int       `json:"grade"`
	ClassName string    `json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Department struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Psychologist struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	DepartmentID      uint      `json:"department_id"`
	YearsOfExperience int       `json:"years_of_experience"`
	Status            string    `json:"status" gorm:"default:'ACTIVE'"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Survey struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	SurveyName  string           `json:"survey_name" gorm:"not null"`
	Description string           `json:"description"`
	SurveyType  string           `json:"survey_type" gorm:"not null"` // DASS21 or CFQ
	Questions   []SurveyQuestion `json:"questions" gorm:"foreignKey:SurveyID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type SurveyQuestion struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"not null"`
	QuestionGroup string         `json:"question_group"` // Depression, Anxiety, Stress; empty for CFQ
	Options       []SurveyOption `json:"options" gorm:"foreignKey:QuestionID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type SurveyOption struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	OptionText string    `json:"option_text" gorm:"not null"`
	Score      int       `json:"score" gorm:"not null"` // 0-3 (DASS21) or 0-4 (CFQ)
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SurveyResult is append-only: created once at submission time, never
// updated or deleted. A resubmission creates a new row.
type SurveyResult struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ResultID        string    `json:"result_id" gorm:"not null;uniqueIndex"`
	StudentID       uint      `json:"student_id" gorm:"not null;index"`
	SurveyID        uint      `json:"survey_id" gorm:"not null;index"`
	SubmissionID    *string   `json:"submission_id,omitempty" gorm:"uniqueIndex"` // client idempotency key
	DepressionScore int       `json:"depression_score"`
	AnxietyScore    int       `json:"anxiety_score"`
	StressScore     int       `json:"stress_score"`
	TotalScore      int       `json:"total_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type Appointment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StudentID      uint      `json:"student_id" gorm:"not null;index"`
	PsychologistID uint      `json:"psychologist_id" gorm:"index"`
	TimeSlotID     *uint     `json:"time_slot_id,omitempty"`
	Status         string    `json:"status" gorm:"default:'PENDING'"` // PENDING, CONFIRMED, COMPLETED, CANCELLED
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DefaultTimeSlot struct {
	SlotID    string `json:"slot_id" gorm:"primaryKey"` // e.g. MORNING-00
	StartTime string `json:"start_time"`                // HH:MM
	EndTime   string `json:"end_time"`
	Period    string `json:"period"` // Morning or Afternoon
}

type TimeSlot struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SlotCode       string    `json:"slot_code" gorm:"uniqueIndex"`
	PsychologistID uint      `json:"psychologist_id" gorm:"not null;index"`
	SlotDate       string    `json:"slot_date"` // YYYY-MM-DD
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	MaxCapacity    int       `json:"max_capacity" gorm:"default:3"`
	Status         string    `json:"status" gorm:"default:'AVAILABLE'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PsychologistKPI tracks achieved appointment slots per month.
type PsychologistKPI struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	PsychologistID uint `json:"psychologist_id" gorm:"not null;index:idx_kpi_month,unique"`
	Month          int  `json:"month" gorm:"index:idx_kpi_month,unique"`
	Year           int  `json:"year" gorm:"index:idx_kpi_month,unique"`
	TargetSlots    int  `json:"target_slots"`
	AchievedSlots  int  `json:"achieved_slots"`
}
