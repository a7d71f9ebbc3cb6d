package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/model"
	"mindcare-backend/internal/service"
)

type UserController struct {
	UserService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	// Optional name search
	if name := c.Query("name"); name != "" {
		users, err := uc.UserService.SearchUsers(name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}
	users, err := uc.UserService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	user, err := uc.UserService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	var updated model.User
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	user, err := uc.UserService.UpdateUser(userID, &updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeactivateUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	user, err := uc.UserService.DeactivateUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) ReactivateUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	user, err := uc.UserService.ReactivateUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUserRole(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	user, err := uc.UserService.UpdateUserRole(userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
