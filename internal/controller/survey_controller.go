package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/service"
)

type SurveyController struct {
	SurveyService      service.SurveyService
	EligibilityService service.EligibilityService
}

func NewSurveyController(surveyService service.SurveyService, eligibilityService service.EligibilityService) *SurveyController {
	return &SurveyController{
		SurveyService:      surveyService,
		EligibilityService: eligibilityService,
	}
}

// GetAllSurveys - List survey definitions
func (sc *SurveyController) GetAllSurveys(c *gin.Context) {
	surveys, err := sc.SurveyService.GetAllSurveys()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurveyByID - Survey detail with questions and options
func (sc *SurveyController) GetSurveyByID(c *gin.Context) {
	surveyID, ok := parseUintParam(c, "surveyId")
	if !ok {
		return
	}
	survey, err := sc.SurveyService.GetSurveyWithQuestions(surveyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, survey)
}

// CreateSurvey - Admin path for new definitions
func (sc *SurveyController) CreateSurvey(c *gin.Context) {
	var survey model.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := sc.SurveyService.CreateSurvey(&survey); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, survey)
}

// SubmitSurvey - Score and persist a student submission
func (sc *SurveyController) SubmitSurvey(c *gin.Context) {
	surveyID, ok := parseUintParam(c, "surveyId")
	if !ok {
		return
	}
	var request model.SurveySubmissionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}
	result, err := sc.SurveyService.ProcessSubmission(surveyID, &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLowScoringStudents - Eligibility scan for a survey
func (sc *SurveyController) GetLowScoringStudents(c *gin.Context) {
	surveyID, ok := parseUintParam(c, "surveyId")
	if !ok {
		return
	}
	requests, err := sc.EligibilityService.FindLowScoringStudents(surveyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ConfirmRequests - Operator approves confirmation requests
func (sc *SurveyController) ConfirmRequests(c *gin.Context) {
	var requests []model.ConfirmationRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	handedOff := sc.EligibilityService.ConfirmAppointmentRequests(requests)
	c.JSON(http.StatusOK, gin.H{"handed_off": handedOff})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
