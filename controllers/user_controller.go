package controllers

import (
	"errors"
	"net/http"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{Auth: auth}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.Auth.GetUser(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

type ProfileInput struct {
	Name *string `json:"name"`
	Goal *string `json:"goal"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.UserPatch{Name: input.Name}
	if input.Goal != nil {
		goal := models.UserGoal(*input.Goal)
		patch.Goal = &goal
	}

	user, err := uc.Auth.UpdateUser(c.GetString("userID"), patch)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			status = http.StatusNotFound
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrInvalidGoal):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
