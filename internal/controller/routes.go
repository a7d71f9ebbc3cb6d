package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	authService service.AuthService,
	userService service.UserService,
	studentService service.StudentService,
	psychologistService service.PsychologistService,
	surveyService service.SurveyService,
	dashboardService service.DashboardService,
	eligibilityService service.EligibilityService,
	appointmentService service.AppointmentService,
	submitLimiter gin.HandlerFunc,
) {
	authCtrl := NewAuthController(authService)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
	}

	surveyCtrl := NewSurveyController(surveyService, eligibilityService)
	surveyRoutes := r.Group("/api/surveys")
	{
		surveyRoutes.GET("", surveyCtrl.GetAllSurveys)
		surveyRoutes.POST("", surveyCtrl.CreateSurvey)
		surveyRoutes.GET("/:surveyId", surveyCtrl.GetSurveyByID)
		if submitLimiter != nil {
			surveyRoutes.POST("/:surveyId/submit", submitLimiter, surveyCtrl.SubmitSurvey)
		} else {
			surveyRoutes.POST("/:surveyId/submit", surveyCtrl.SubmitSurvey)
		}
		surveyRoutes.GET("/:surveyId/low-scoring", surveyCtrl.GetLowScoringStudents)
		surveyRoutes.POST("/confirmations", surveyCtrl.ConfirmRequests)
	}

	dashboardCtrl := NewDashboardController(dashboardService)
	dashboardRoutes := r.Group("/api/dashboard/students/:studentId")
	{
		dashboardRoutes.GET("/summary", dashboardCtrl.GetStudentSummary)
		dashboardRoutes.GET("/history", dashboardCtrl.GetSurveyHistory)
		dashboardRoutes.GET("/report", dashboardCtrl.DownloadSummaryReport)
	}

	studentCtrl := NewStudentController(studentService)
	studentRoutes := r.Group("/api/students/:studentId")
	{
		studentRoutes.GET("", studentCtrl.GetStudentByID)
		studentRoutes.PUT("", studentCtrl.UpdateStudent)
		studentRoutes.GET("/surveys", studentCtrl.GetStudentSurveys)
		studentRoutes.GET("/surveys/pending", studentCtrl.GetPendingSurveys)
		studentRoutes.GET("/appointments", studentCtrl.GetStudentAppointments)
		studentRoutes.GET("/appointments/upcoming", studentCtrl.GetUpcomingAppointments)
	}

	psychologistCtrl := NewPsychologistController(psychologistService)
	psychologistRoutes := r.Group("/api/psychologists")
	{
		psychologistRoutes.GET("", psychologistCtrl.GetAllPsychologists)
		psychologistRoutes.GET("/:id", psychologistCtrl.GetPsychologistByID)
		psychologistRoutes.PUT("/:id", psychologistCtrl.UpdatePsychologist)
		psychologistRoutes.POST("/:id/timeslots", psychologistCtrl.CreateTimeSlots)
	}

	timeslotRoutes := r.Group("/api/timeslots")
	{
		timeslotRoutes.GET("/defaults", psychologistCtrl.GetDefaultTimeSlots)
		timeslotRoutes.GET("", psychologistCtrl.GetTimeSlots)
	}

	userCtrl := NewUserController(userService)
	userRoutes := r.Group("/api/users")
	{
		userRoutes.GET("", userCtrl.GetAllUsers)
		userRoutes.GET("/:userId", userCtrl.GetUserByID)
		userRoutes.PUT("/:userId", userCtrl.UpdateUser)
		userRoutes.PUT("/:userId/deactivate", userCtrl.DeactivateUser)
		userRoutes.PUT("/:userId/reactivate", userCtrl.ReactivateUser)
		userRoutes.PUT("/:userId/role", userCtrl.UpdateUserRole)
	}

	// Appointment listings stay thin enough to live here.
	appointmentRoutes := r.Group("/api/appointments")
	{
		appointmentRoutes.GET("", func(c *gin.Context) {
			appointments, err := appointmentService.GetAllAppointments()
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, appointments)
		})
	}
}
