package models

import "time"

type DifficultyRating string

const (
	RatingEasy DifficultyRating = "Fácil"
	RatingFair DifficultyRating = "Justo"
	RatingHard DifficultyRating = "Difícil"
)

func (r DifficultyRating) Valid() bool {
	switch r {
	case RatingEasy, RatingFair, RatingHard:
		return true
	}
	return false
}

type LoggedSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// LoggedExercise is scratch data while a session runs; it is frozen into the
// workout log on completion. SetsPerformed is sized to the routine's
// prescribed set count at session start and never resized.
type LoggedExercise struct {
	ExerciseID       string           `json:"exerciseId"`
	SetsPerformed    []LoggedSet      `json:"setsPerformed"`
	Notes            string           `json:"notes,omitempty"`
	DifficultyRating DifficultyRating `json:"difficultyRating,omitempty"`
}

// WorkoutLog is the immutable record of one completed session. RoutineName is
// denormalized so history stays readable after the routine is deleted.
type WorkoutLog struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"userId"`
	RoutineID          string           `json:"routineId,omitempty"`
	RoutineName        string           `json:"routineName,omitempty"`
	Date               time.Time        `json:"date"`
	CompletedExercises []LoggedExercise `json:"completedExercises"`
	DurationMinutes    int              `json:"durationMinutes"`
}
