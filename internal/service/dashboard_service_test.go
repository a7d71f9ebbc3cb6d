package service

import (
	"bytes"
	"testing"
	"time"

	"mindcare-backend/internal/model"
)

func newDashboardFixture() (*fakeResultRepo, *fakeSurveyRepo, DashboardService) {
	resultRepo := &fakeResultRepo{}
	surveyRepo := &fakeSurveyRepo{surveys: []model.Survey{
		{ID: 1, SurveyName: "DASS-21", SurveyType: model.SurveyTypeDASS21},
		{ID: 2, SurveyName: "CFQ", SurveyType: model.SurveyTypeCFQ},
	}}
	return resultRepo, surveyRepo, NewDashboardService(resultRepo, surveyRepo, nil)
}

func TestGetStudentSummaryNoResults(t *testing.T) {
	_, _, svc := newDashboardFixture()

	summary, err := svc.GetStudentSummary(7)
	if err != nil {
		t.Fatalf("GetStudentSummary failed: %v", err)
	}
	if summary.StudentID != 7 {
		t.Errorf("student id = %d, want 7", summary.StudentID)
	}
	if summary.ResultCount != 0 {
		t.Errorf("result count = %d, want 0", summary.ResultCount)
	}
	if summary.CFQAverageScore != 0 || summary.DepressionSeverity != "" {
		t.Errorf("empty summary carries data: %+v", summary)
	}
}

func TestGetStudentSummaryLatestDASS21AndCFQMean(t *testing.T) {
	resultRepo, _, svc := newDashboardFixture()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	resultRepo.results = []model.SurveyResult{
		// older DASS-21 must lose to the newer one
		{ID: 1, StudentID: 7, SurveyID: 1, DepressionScore: 30, AnxietyScore: 30, StressScore: 40, CreatedAt: base},
		{ID: 2, StudentID: 7, SurveyID: 1, DepressionScore: 10, AnxietyScore: 8, StressScore: 15, CreatedAt: base.Add(48 * time.Hour)},
		// every CFQ total feeds the mean
		{ID: 3, StudentID: 7, SurveyID: 2, TotalScore: 40, CreatedAt: base},
		{ID: 4, StudentID: 7, SurveyID: 2, TotalScore: 60, CreatedAt: base.Add(24 * time.Hour)},
		// another student must not leak in
		{ID: 5, StudentID: 8, SurveyID: 2, TotalScore: 100, CreatedAt: base},
	}

	summary, err := svc.GetStudentSummary(7)
	if err != nil {
		t.Fatalf("GetStudentSummary failed: %v", err)
	}
	if summary.LatestDepressionScore != 10 || summary.LatestAnxietyScore != 8 || summary.LatestStressScore != 15 {
		t.Errorf("latest DASS-21 scores = %d/%d/%d, want 10/8/15",
			summary.LatestDepressionScore, summary.LatestAnxietyScore, summary.LatestStressScore)
	}
	if summary.DepressionSeverity != BandMild || summary.AnxietySeverity != BandMild || summary.StressSeverity != BandMild {
		t.Errorf("severities = %s/%s/%s, want all %s",
			summary.DepressionSeverity, summary.AnxietySeverity, summary.StressSeverity, BandMild)
	}
	if summary.CFQAverageScore != 50 {
		t.Errorf("CFQ average = %v, want 50", summary.CFQAverageScore)
	}
	if summary.CFQSeverity != BandTypical {
		t.Errorf("CFQ severity = %q, want %q", summary.CFQSeverity, BandTypical)
	}
	if summary.ResultCount != 4 {
		t.Errorf("result count = %d, want 4", summary.ResultCount)
	}
}

func TestGetStudentSummaryEqualTimestampsBreakOnID(t *testing.T) {
	resultRepo, _, svc := newDashboardFixture()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	resultRepo.results = []model.SurveyResult{
		{ID: 2, StudentID: 7, SurveyID: 1, DepressionScore: 28, CreatedAt: at},
		{ID: 1, StudentID: 7, SurveyID: 1, DepressionScore: 0, CreatedAt: at},
	}

	summary, err := svc.GetStudentSummary(7)
	if err != nil {
		t.Fatalf("GetStudentSummary failed: %v", err)
	}
	if summary.LatestDepressionScore != 28 {
		t.Errorf("latest depression = %d, want 28 (larger id wins the tie)", summary.LatestDepressionScore)
	}
}

func TestGetSurveyHistorySortsNewestFirst(t *testing.T) {
	resultRepo, _, svc := newDashboardFixture()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	resultRepo.results = []model.SurveyResult{
		{ID: 1, ResultID: "r-1", StudentID: 7, SurveyID: 1, CreatedAt: base},
		{ID: 2, ResultID: "r-2", StudentID: 7, SurveyID: 2, TotalScore: 80, CreatedAt: base.Add(72 * time.Hour)},
		{ID: 3, ResultID: "r-3", StudentID: 7, SurveyID: 1, CreatedAt: base.Add(24 * time.Hour)},
	}

	entries, err := svc.GetSurveyHistory(7, "")
	if err != nil {
		t.Fatalf("GetSurveyHistory failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, want := range []string{"r-2", "r-3", "r-1"} {
		if entries[i].ResultID != want {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ResultID, want)
		}
	}
	if entries[0].SurveyName != "CFQ" || entries[0].SurveyType != model.SurveyTypeCFQ {
		t.Errorf("entry not annotated with survey name/type: %+v", entries[0])
	}
	if entries[0].SeverityLevels[CategoryCFQ] != BandHigh {
		t.Errorf("severity levels = %v, want CFQ High", entries[0].SeverityLevels)
	}
	if entries[0].CompletedDate != base.Add(72*time.Hour).Format(time.RFC3339) {
		t.Errorf("completed date = %q", entries[0].CompletedDate)
	}
}

func TestGetSurveyHistoryFiltersByTypeCaseInsensitive(t *testing.T) {
	resultRepo, _, svc := newDashboardFixture()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	resultRepo.results = []model.SurveyResult{
		{ID: 1, ResultID: "r-1", StudentID: 7, SurveyID: 1, CreatedAt: base},
		{ID: 2, ResultID: "r-2", StudentID: 7, SurveyID: 2, CreatedAt: base.Add(time.Hour)},
	}

	entries, err := svc.GetSurveyHistory(7, "cfq")
	if err != nil {
		t.Fatalf("GetSurveyHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ResultID != "r-2" {
		t.Errorf("filtered entries = %+v, want just r-2", entries)
	}
}

func TestGetSurveyHistoryEmpty(t *testing.T) {
	_, _, svc := newDashboardFixture()

	entries, err := svc.GetSurveyHistory(7, "")
	if err != nil {
		t.Fatalf("GetSurveyHistory failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want empty non-nil slice", entries)
	}
}

func TestGenerateSummaryReportProducesPDF(t *testing.T) {
	resultRepo, _, svc := newDashboardFixture()
	resultRepo.results = []model.SurveyResult{
		{ID: 1, StudentID: 7, SurveyID: 1, DepressionScore: 14, CreatedAt: time.Now()},
	}

	data, err := svc.GenerateSummaryReport(7)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("report does not start with a PDF header")
	}
}
