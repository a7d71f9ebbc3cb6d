package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/service"
)

type DashboardController struct {
	DashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetStudentSummary - Latest scores with severity plus CFQ average
func (dc *DashboardController) GetStudentSummary(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	summary, err := dc.DashboardService.GetStudentSummary(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSurveyHistory - Full history, newest first, optional type filter
func (dc *DashboardController) GetSurveyHistory(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	history, err := dc.DashboardService.GetSurveyHistory(studentID, c.Query("surveyType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// DownloadSummaryReport - PDF rendering of the summary
func (dc *DashboardController) DownloadSummaryReport(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	pdfBytes, err := dc.DashboardService.GenerateSummaryReport(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=summary-%d.pdf", studentID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
