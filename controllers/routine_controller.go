package controllers

import (
	"errors"
	"net/http"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/services"

	"github.com/gin-gonic/gin"
)

type RoutineController struct {
	Routines *services.RoutineService
}

func NewRoutineController(routines *services.RoutineService) *RoutineController {
	return &RoutineController{Routines: routines}
}

func routineStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrRoutineNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoutineName),
		errors.Is(err, services.ErrRoutineNoExercise),
		errors.Is(err, services.ErrRoutineExercise):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (rc *RoutineController) List(c *gin.Context) {
	routines, err := rc.Routines.List(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if routines == nil {
		routines = []models.Routine{}
	}
	c.JSON(http.StatusOK, routines)
}

func (rc *RoutineController) Create(c *gin.Context) {
	var input services.RoutineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routine, err := rc.Routines.Create(c.GetString("userID"), input)
	if err != nil {
		c.JSON(routineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (rc *RoutineController) Get(c *gin.Context) {
	routine, err := rc.Routines.Get(c.GetString("userID"), c.Param("id"))
	if err != nil {
		c.JSON(routineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (rc *RoutineController) Update(c *gin.Context) {
	var input services.RoutineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routine, err := rc.Routines.Update(c.GetString("userID"), c.Param("id"), input)
	if err != nil {
		c.JSON(routineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (rc *RoutineController) Delete(c *gin.Context) {
	if err := rc.Routines.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(routineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
