package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"mindcare-backend/internal/config"
	"mindcare-backend/internal/db"
	"mindcare-backend/internal/model"
	"mindcare-backend/internal/repository"
	"mindcare-backend/internal/service"
)

// Seeds the reference data the platform needs before first use: the two
// survey definitions (DASS-21, CFQ), counselling departments, the
// default time-slot grid, and a manager account. Idempotent - existing
// data is left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db.InitDBFromConfig(cfg)
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

	seedSurveys()
	seedDepartments()
	seedDefaultSlots()
	seedManager()

	fmt.Println("Database seeding completed successfully!")
}

func seedSurveys() {
	surveyRepo := repository.NewSurveyRepository()
	existing, err := surveyRepo.GetAllSurveys()
	if err != nil {
		log.Fatalf("failed to list surveys: %v", err)
	}
	have := make(map[string]bool)
	for _, s := range existing {
		have[s.SurveyType] = true
	}

	if !have[model.SurveyTypeDASS21] {
		if err := surveyRepo.CreateSurvey(buildDASS21()); err != nil {
			log.Fatalf("failed to seed DASS-21: %v", err)
		}
		fmt.Println("Inserted survey: DASS-21")
	}
	if !have[model.SurveyTypeCFQ] {
		if err := surveyRepo.CreateSurvey(buildCFQ()); err != nil {
			log.Fatalf("failed to seed CFQ: %v", err)
		}
		fmt.Println("Inserted survey: CFQ")
	}
}

func buildDASS21() *model.Survey {
	// Standard DASS-21 item-to-subscale mapping.
	items := []struct {
		text  string
		group string
	}{
		{"I found it hard to wind down", model.GroupStress},
		{"I was aware of dryness of my mouth", model.GroupAnxiety},
		{"I couldn't seem to experience any positive feeling at all", model.GroupDepression},
		{"I experienced breathing difficulty", model.GroupAnxiety},
		{"I found it difficult to work up the initiative to do things", model.GroupDepression},
		{"I tended to over-react to situations", model.GroupStress},
		{"I experienced trembling (e.g. in the hands)", model.GroupAnxiety},
		{"I felt that I was using a lot of nervous energy", model.GroupStress},
		{"I was worried about situations in which I might panic and make a fool of myself", model.GroupAnxiety},
		{"I felt that I had nothing to look forward to", model.GroupDepression},
		{"I found myself getting agitated", model.GroupStress},
		{"I found it difficult to relax", model.GroupStress},
		{"I felt down-hearted and blue", model.GroupDepression},
		{"I was intolerant of anything that kept me from getting on with what I was doing", model.GroupStress},
		{"I felt I was close to panic", model.GroupAnxiety},
		{"I was unable to become enthusiastic about anything", model.GroupDepression},
		{"I felt I wasn't worth much as a person", model.GroupDepression},
		{"I felt that I was rather touchy", model.GroupStress},
		{"I was aware of the action of my heart in the absence of physical exertion", model.GroupAnxiety},
		{"I felt scared without any good reason", model.GroupAnxiety},
		{"I felt that life was meaningless", model.GroupDepression},
	}
	optionTexts := []string{
		"Did not apply to me at all",
		"Applied to me to some degree, or some of the time",
		"Applied to me to a considerable degree, or a good part of time",
		"Applied to me very much, or most of the time",
	}

	survey := &model.Survey{
		SurveyName:  "DASS-21",
		Description: "Depression Anxiety Stress Scales, 21-item self-report instrument",
		SurveyType:  model.SurveyTypeDASS21,
	}
	for _, item := range items {
		question := model.SurveyQuestion{
			QuestionText:  item.text,
			QuestionGroup: item.group,
		}
		for score, text := range optionTexts {
			question.Options = append(question.Options, model.SurveyOption{
				OptionText: text,
				Score:      score,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}
	return survey
}

func buildCFQ() *model.Survey {
	items := []string{
		"Do you read something and find you haven't been thinking about it and must read it again?",
		"Do you find you forget why you went from one part of the house to the other?",
		"Do you fail to notice signposts on the road?",
		"Do you find you confuse right and left when giving directions?",
		"Do you bump into people?",
		"Do you find you forget whether you've turned off a light or a fire or locked the door?",
		"Do you fail to listen to people's names when you are meeting them?",
		"Do you say something and realize afterwards that it might be taken as insulting?",
		"Do you fail to hear people speaking to you when you are doing something else?",
		"Do you lose your temper and regret it?",
		"Do you leave important letters unanswered for days?",
		"Do you find you forget which way to turn on a road you know well but rarely use?",
		"Do you fail to see what you want in a supermarket (although it's there)?",
		"Do you find yourself suddenly wondering whether you've used a word correctly?",
		"Do you have trouble making up your mind?",
		"Do you find you forget appointments?",
		"Do you forget where you put something like a newspaper or a book?",
		"Do you find you accidentally throw away the thing you want and keep what you meant to throw away?",
		"Do you daydream when you ought to be listening to something?",
		"Do you find you forget people's names?",
		"Do you start doing one thing at home and get distracted into doing something else (unintentionally)?",
		"Do you find you can't quite remember something although it's 'on the tip of your tongue'?",
		"Do you find you forget what you came to the shops to buy?",
		"Do you drop things?",
		"Do you find you can't think of anything to say?",
	}
	optionTexts := []string{"Never", "Very rarely", "Occasionally", "Quite often", "Very often"}

	survey := &model.Survey{
		SurveyName:  "CFQ",
		Description: "Cognitive Failures Questionnaire, 25-item self-report instrument",
		SurveyType:  model.SurveyTypeCFQ,
	}
	for _, text := range items {
		question := model.SurveyQuestion{QuestionText: text}
		for score, optionText := range optionTexts {
			question.Options = append(question.Options, model.SurveyOption{
				OptionText: optionText,
				Score:      score,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}
	return survey
}

func seedDepartments() {
	departmentRepo := repository.NewDepartmentRepository()
	existing, err := departmentRepo.GetAllDepartments()
	if err != nil {
		log.Fatalf("failed to list departments: %v", err)
	}
	have := make(map[string]bool)
	for _, d := range existing {
		have[d.Name] = true
	}
	for _, name := range []string{"Student Counselling", "Clinical Psychology", "Behavioural Therapy"} {
		if have[name] {
			continue
		}
		if err := departmentRepo.CreateDepartment(&model.Department{Name: name}); err != nil {
			log.Printf("failed to insert department %s: %v", name, err)
		} else {
			fmt.Println("Inserted department:", name)
		}
	}
}

func seedDefaultSlots() {
	psychologistService := service.NewPsychologistService(
		repository.NewPsychologistRepository(),
		repository.NewDepartmentRepository(),
		repository.NewTimeSlotRepository(),
		repository.NewAppointmentRepository(),
	)
	if err := psychologistService.EnsureDefaultSlots(); err != nil {
		log.Printf("failed to seed default time slots: %v", err)
	} else {
		fmt.Println("Default time slots in place")
	}
}

func seedManager() {
	userRepo := repository.NewUserRepository()
	if _, err := userRepo.GetUserByEmail("manager@mindcare.local"); err == nil {
		return
	}

	fmt.Print("Manager account password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil || len(password) == 0 {
		fmt.Println("No password entered, skipping manager account")
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash manager password: %v", err)
	}
	manager := &model.User{
		FullName: "Platform Manager",
		Email:    "manager@mindcare.local",
		Password: string(hashed),
		Role:     "MANAGER",
		Active:   true,
	}
	if err := userRepo.CreateUser(manager); err != nil {
		log.Fatalf("failed to create manager account: %v", err)
	}
	fmt.Println("Inserted manager account: manager@mindcare.local")
}
