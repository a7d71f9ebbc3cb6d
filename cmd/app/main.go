package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mindcare-backend/internal/config"
	"mindcare-backend/internal/controller"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
	"mindcare-backend/internal/service"
	"mindcare-backend/pkg/middleware"
	"mindcare-backend/utilities"
)

func main() {
	printStartUpBanner()

	// .env first so config can resolve TYPE="env" passwords.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logDir := cfg.Context.LogDir
	if logDir == "" {
		logDir = "logs"
	}
	utilities.SetupLogging(logDir)

	// Initialize DB using the loaded config.
	db.InitDBFromConfig(cfg)
	// Run migrations.
	if err := db.GetDB().AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Department{},
		&model.Psychologist{},
		&model.Survey{},
		&model.SurveyQuestion{},
		&model.SurveyOption{},
		&model.SurveyResult{},
		&model.Appointment{},
		&model.DefaultTimeSlot{},
		&model.TimeSlot{},
		&model.PsychologistKPI{},
	); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Create repositories.
	userRepo := repository.NewUserRepository()
	studentRepo := repository.NewStudentRepository()
	departmentRepo := repository.NewDepartmentRepository()
	psychologistRepo := repository.NewPsychologistRepository()
	surveyRepo := repository.NewSurveyRepository()
	resultRepo := repository.NewResultRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	timeSlotRepo := repository.NewTimeSlotRepository()

	// Create services.
	bus := utilities.GlobalEventBus
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	studentService := service.NewStudentService(studentRepo, surveyRepo, resultRepo, appointmentRepo)
	psychologistService := service.NewPsychologistService(psychologistRepo, departmentRepo, timeSlotRepo, appointmentRepo)
	surveyService := service.NewSurveyService(surveyRepo, resultRepo, studentRepo, bus, cfg.Scoring.Dass21TotalIsSum)
	dashboardService := service.NewDashboardService(resultRepo, surveyRepo, db.NewStatsExecutor(db.GetDB()))
	eligibilityService := service.NewEligibilityService(resultRepo, surveyRepo, bus,
		cfg.Scoring.InterventionBand, cfg.Scoring.CFQInterventionBand)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// Confirmed eligibility requests become pending appointment offers.
	appointmentService.RegisterConfirmationListener(bus)
	bus.Subscribe(service.EventResultCreated, func(data interface{}) {
		if result, ok := data.(*model.SurveyResult); ok {
			utilities.Info("survey result %s recorded for student %d", result.ResultID, result.StudentID)
		}
	})

	if err := psychologistService.EnsureDefaultSlots(); err != nil {
		utilities.Warn("default slot init failed: %v", err)
	}

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.Authentication.EnableTokenAuth {
		r.Use(utilities.AuthMiddleware())
	}

	submitLimiter := middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	controller.RegisterRoutes(r,
		authService,
		userService,
		studentService,
		psychologistService,
		surveyService,
		dashboardService,
		eligibilityService,
		appointmentService,
		submitLimiter,
	)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("MINDCARE", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("MINDCARE API (v%s)\n\n", "1.0.0")
}
