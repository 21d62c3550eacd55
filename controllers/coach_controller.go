package controllers

import (
	"errors"
	"net/http"

	"github.com/Areuc/MyrepsCL/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{Coach: coach}
}

func (cc *CoachController) Messages(c *gin.Context) {
	messages, err := cc.Coach.Messages(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (cc *CoachController) Advice(c *gin.Context) {
	msg, err := cc.Coach.Advice(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}
