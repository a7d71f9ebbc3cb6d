package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
)

type DashboardService interface {
	GetStudentSummary(studentID uint) (*model.PsychologicalSummary, error)
	GetSurveyHistory(studentID uint, surveyTypeFilter string) ([]model.SurveyHistoryEntry, error)
	GenerateSummaryReport(studentID uint) ([]byte, error)
}

type dashboardService struct {
	resultRepo repository.ResultRepository
	surveyRepo repository.SurveyRepository
	stats      *db.StatsExecutor
}

func NewDashboardService(
	resultRepo repository.ResultRepository,
	surveyRepo repository.SurveyRepository,
	stats *db.StatsExecutor,
) DashboardService {
	return &dashboardService{
		resultRepo: resultRepo,
		surveyRepo: surveyRepo,
		stats:      stats,
	}
}

// GetStudentSummary - Latest DASS-21 sub-scores with severity labels plus
// the mean of every CFQ total ever recorded. The asymmetry (latest vs.
// running average) is intentional: DASS-21 reflects current state, CFQ
// tracks a trait. Zero results is a normal state, not an error.
func (s *dashboardService) GetStudentSummary(studentID uint) (*model.PsychologicalSummary, error) {
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	typeOf, _, err := s.surveyIndex()
	if err != nil {
		return nil, err
	}

	summary := &model.PsychologicalSummary{StudentID: studentID, ResultCount: len(results)}

	if latest := latestOfType(results, typeOf, model.SurveyTypeDASS21); latest != nil {
		summary.LatestDepressionScore = latest.DepressionScore
		summary.LatestAnxietyScore = latest.AnxietyScore
		summary.LatestStressScore = latest.StressScore
		summary.DepressionSeverity = Classify(model.SurveyTypeDASS21, model.GroupDepression, latest.DepressionScore)
		summary.AnxietySeverity = Classify(model.SurveyTypeDASS21, model.GroupAnxiety, latest.AnxietyScore)
		summary.StressSeverity = Classify(model.SurveyTypeDASS21, model.GroupStress, latest.StressScore)
	}

	var cfqSum, cfqCount int
	for i := range results {
		if typeOf[results[i].SurveyID] == model.SurveyTypeCFQ {
			cfqSum += results[i].TotalScore
			cfqCount++
		}
	}
	if cfqCount > 0 {
		summary.CFQAverageScore = float64(cfqSum) / float64(cfqCount)
		summary.CFQSeverity = Classify(model.SurveyTypeCFQ, CategoryCFQ, int(summary.CFQAverageScore))
	}

	return summary, nil
}

// GetSurveyHistory - Every result for the student, newest first, each
// annotated with its severity-level map. surveyTypeFilter is optional and
// matched case-insensitively.
func (s *dashboardService) GetSurveyHistory(studentID uint, surveyTypeFilter string) ([]model.SurveyHistoryEntry, error) {
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	typeOf, nameOf, err := s.surveyIndex()
	if err != nil {
		return nil, err
	}

	sortResultsNewestFirst(results)

	entries := make([]model.SurveyHistoryEntry, 0, len(results))
	for i := range results {
		result := &results[i]
		surveyType := typeOf[result.SurveyID]
		if surveyTypeFilter != "" && !strings.EqualFold(surveyType, surveyTypeFilter) {
			continue
		}
		entries = append(entries, model.SurveyHistoryEntry{
			ResultID:        result.ResultID,
			SurveyID:        result.SurveyID,
			SurveyName:      nameOf[result.SurveyID],
			SurveyType:      surveyType,
			CompletedDate:   result.CreatedAt.UTC().Format(time.RFC3339),
			DepressionScore: result.DepressionScore,
			AnxietyScore:    result.AnxietyScore,
			StressScore:     result.StressScore,
			TotalScore:      result.TotalScore,
			SeverityLevels:  SeverityLevels(surveyType, result),
		})
	}
	return entries, nil
}

// GenerateSummaryReport - Render the psychological summary as a PDF for
// download by counselling staff.
func (s *dashboardService) GenerateSummaryReport(studentID uint) ([]byte, error) {
	summary, err := s.GetStudentSummary(studentID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Psychological Summary - Student %d", studentID))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"Depression (latest DASS-21)", fmt.Sprintf("%d  (%s)", summary.LatestDepressionScore, summary.DepressionSeverity)},
		{"Anxiety (latest DASS-21)", fmt.Sprintf("%d  (%s)", summary.LatestAnxietyScore, summary.AnxietySeverity)},
		{"Stress (latest DASS-21)", fmt.Sprintf("%d  (%s)", summary.LatestStressScore, summary.StressSeverity)},
		{"CFQ (all-time average)", fmt.Sprintf("%.1f  (%s)", summary.CFQAverageScore, summary.CFQSeverity)},
	}
	for _, row := range rows {
		pdf.CellFormat(90, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 8, row[1], "1", 1, "L", false, 0, "")
	}

	if s.stats != nil {
		if stats, err := s.stats.StudentResultStats(studentID); err == nil {
			pdf.Ln(6)
			pdf.SetFont("Arial", "I", 9)
			for _, st := range stats {
				pdf.CellFormat(0, 6,
					fmt.Sprintf("%s: %d result(s), last taken %s", st.SurveyType, st.ResultCount, st.LastTaken),
					"", 1, "L", false, 0, "")
			}
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, "Generated "+time.Now().UTC().Format(time.RFC3339))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// surveyIndex maps survey id to type and name. Definitions are
// read-mostly reference data, so one list query per call is fine.
func (s *dashboardService) surveyIndex() (map[uint]string, map[uint]string, error) {
	surveys, err := s.surveyRepo.GetAllSurveys()
	if err != nil {
		return nil, nil, err
	}
	typeOf := make(map[uint]string, len(surveys))
	nameOf := make(map[uint]string, len(surveys))
	for _, sv := range surveys {
		typeOf[sv.ID] = sv.SurveyType
		nameOf[sv.ID] = sv.SurveyName
	}
	return typeOf, nameOf, nil
}

// latestOfType picks the most recent result of the given survey type.
// Timestamp ties break on the larger row id so equal-timestamp rows can
// never make the choice flap.
func latestOfType(results []model.SurveyResult, typeOf map[uint]string, surveyType string) *model.SurveyResult {
	var latest *model.SurveyResult
	for i := range results {
		if typeOf[results[i].SurveyID] != surveyType {
			continue
		}
		if latest == nil || results[i].CreatedAt.After(latest.CreatedAt) ||
			(results[i].CreatedAt.Equal(latest.CreatedAt) && results[i].ID > latest.ID) {
			latest = &results[i]
		}
	}
	return latest
}

func sortResultsNewestFirst(results []model.SurveyResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID > results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
}
