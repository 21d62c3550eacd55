package models

// RoutineExercise prescribes one exercise inside a routine. ExerciseID is a
// weak reference into the catalog; reps is free-form ("8-12", "AMRAP").
type RoutineExercise struct {
	ExerciseID      string `json:"exerciseId"`
	Sets            int    `json:"sets"`
	Reps            string `json:"reps"`
	RestTimeSeconds int    `json:"restTimeSeconds"`
}

type Routine struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Exercises   []RoutineExercise `json:"exercises"`
	CreatedBy   string            `json:"createdBy"`
}
