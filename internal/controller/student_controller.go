package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/service"
)

type StudentController struct {
	StudentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

func (sc *StudentController) GetStudentByID(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	student, err := sc.StudentService.GetStudentByID(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (sc *StudentController) UpdateStudent(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	var request model.Student
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	student, err := sc.StudentService.UpdateStudent(studentID, &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (sc *StudentController) GetStudentSurveys(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	exists, err := sc.StudentService.StudentExists(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "no student found"})
		return
	}
	surveys, err := sc.StudentService.GetStudentSurveys(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

func (sc *StudentController) GetPendingSurveys(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	surveys, err := sc.StudentService.GetPendingSurveys(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

func (sc *StudentController) GetStudentAppointments(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	appointments, err := sc.StudentService.GetAppointments(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (sc *StudentController) GetUpcomingAppointments(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}
	appointments, err := sc.StudentService.GetUpcomingAppointments(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
