package controllers

import (
	"errors"
	"net/http"

	"github.com/Areuc/MyrepsCL/catalog"
	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
	Catalog  *catalog.Catalog
}

func NewWorkoutController(workouts *services.WorkoutService, cat *catalog.Catalog) *WorkoutController {
	return &WorkoutController{Workouts: workouts, Catalog: cat}
}

func sessionStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNoActiveSession):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSessionNotInProgress), errors.Is(err, services.ErrSessionInProgress):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRoutineNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type StartSessionInput struct {
	RoutineID string `json:"routineId" binding:"required"`
}

func (wc *WorkoutController) StartSession(c *gin.Context) {
	var input StartSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := wc.Workouts.Start(c.GetString("userID"), input.RoutineID)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (wc *WorkoutController) GetSession(c *gin.Context) {
	view, err := wc.Workouts.Session(c.GetString("userID"))
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (wc *WorkoutController) Advance(c *gin.Context) {
	view, err := wc.Workouts.Advance(c.GetString("userID"))
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (wc *WorkoutController) Retreat(c *gin.Context) {
	view, err := wc.Workouts.Retreat(c.GetString("userID"))
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

type RecordSetInput struct {
	ExerciseIndex int    `json:"exerciseIndex"`
	SetIndex      int    `json:"setIndex"`
	Field         string `json:"field" binding:"required,oneof=reps weight"`
	Value         string `json:"value"`
}

func (wc *WorkoutController) RecordSet(c *gin.Context) {
	var input RecordSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	var err error
	if input.Field == "reps" {
		err = wc.Workouts.RecordReps(userID, input.ExerciseIndex, input.SetIndex, input.Value)
	} else {
		err = wc.Workouts.RecordWeight(userID, input.ExerciseIndex, input.SetIndex, input.Value)
	}
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type RecordNotesInput struct {
	ExerciseIndex int    `json:"exerciseIndex"`
	Notes         string `json:"notes"`
}

func (wc *WorkoutController) RecordNotes(c *gin.Context) {
	var input RecordNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := wc.Workouts.RecordNotes(c.GetString("userID"), input.ExerciseIndex, input.Notes); err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type FinishInput struct {
	DifficultyRating string `json:"difficultyRating"`
}

func (wc *WorkoutController) Finish(c *gin.Context) {
	var input FinishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workoutLog, err := wc.Workouts.RateAndFinish(c.GetString("userID"), models.DifficultyRating(input.DifficultyRating))
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, workoutLog)
}

func (wc *WorkoutController) Abandon(c *gin.Context) {
	if err := wc.Workouts.Abandon(c.GetString("userID")); err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (wc *WorkoutController) ListLogs(c *gin.Context) {
	logs, err := wc.Workouts.Logs(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []models.WorkoutLog{}
	}

	// Resolve exercise names for display; dangling IDs degrade to a
	// placeholder instead of failing the read.
	names := make(map[string]string)
	for _, l := range logs {
		for _, ex := range l.CompletedExercises {
			names[ex.ExerciseID] = wc.Catalog.NameOf(ex.ExerciseID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "exerciseNames": names})
}

func (wc *WorkoutController) LatestLog(c *gin.Context) {
	last, err := wc.Workouts.LatestLog(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if last == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sin entrenamientos registrados"})
		return
	}
	c.JSON(http.StatusOK, last)
}
