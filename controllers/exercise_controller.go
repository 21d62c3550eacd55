package controllers

import (
	"net/http"

	"github.com/Areuc/MyrepsCL/catalog"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Catalog *catalog.Catalog
}

func NewExerciseController(cat *catalog.Catalog) *ExerciseController {
	return &ExerciseController{Catalog: cat}
}

func (ec *ExerciseController) List(c *gin.Context) {
	if group := c.Query("muscleGroup"); group != "" {
		c.JSON(http.StatusOK, ec.Catalog.ByMuscleGroup(group))
		return
	}
	c.JSON(http.StatusOK, ec.Catalog.All())
}

func (ec *ExerciseController) Get(c *gin.Context) {
	ex, ok := ec.Catalog.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": catalog.UnknownExerciseName})
		return
	}
	c.JSON(http.StatusOK, ex)
}
