package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/service"
)

type PsychologistController struct {
	PsychologistService service.PsychologistService
}

func NewPsychologistController(psychologistService service.PsychologistService) *PsychologistController {
	return &PsychologistController{PsychologistService: psychologistService}
}

func (pc *PsychologistController) GetAllPsychologists(c *gin.Context) {
	// Optional department filter
	if raw := c.Query("departmentId"); raw != "" {
		departmentID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departmentId"})
			return
		}
		psychologists, err := pc.PsychologistService.GetPsychologistsByDepartment(uint(departmentID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, psychologists)
		return
	}

	psychologists, err := pc.PsychologistService.GetAllPsychologists()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, psychologists)
}

func (pc *PsychologistController) GetPsychologistByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	psychologist, err := pc.PsychologistService.GetPsychologistByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, psychologist)
}

func (pc *PsychologistController) UpdatePsychologist(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var request model.Psychologist
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	currentUserID := c.GetUint("user_id")
	psychologist, err := pc.PsychologistService.UpdatePsychologist(id, &request, currentUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, psychologist)
}

func (pc *PsychologistController) GetDefaultTimeSlots(c *gin.Context) {
	slots, err := pc.PsychologistService.GetDefaultTimeSlots()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// CreateTimeSlots - Materialize slots for a date from default slot ids
func (pc *PsychologistController) CreateTimeSlots(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		SlotDate       string   `json:"slot_date" binding:"required"`
		DefaultSlotIDs []string `json:"default_slot_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}
	slots, err := pc.PsychologistService.CreateTimeSlotsFromDefaults(id, req.SlotDate, req.DefaultSlotIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetTimeSlots - Query slots with optional psychologistId/date/studentId
func (pc *PsychologistController) GetTimeSlots(c *gin.Context) {
	var psychologistID, studentID uint
	if raw := c.Query("psychologistId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid psychologistId"})
			return
		}
		psychologistID = uint(v)
	}
	if raw := c.Query("studentId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid studentId"})
			return
		}
		studentID = uint(v)
	}
	slots, err := pc.PsychologistService.GetPsychologistTimeSlots(psychologistID, c.Query("date"), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
