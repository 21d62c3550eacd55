package models

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Principiante"
	DifficultyIntermediate Difficulty = "Intermedio"
	DifficultyAdvanced     Difficulty = "Avanzado"
)

// Exercise is static reference data, built once at process start and never
// mutated.
type Exercise struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	MuscleGroup     string     `json:"muscleGroup"`
	EquipmentNeeded string     `json:"equipmentNeeded"`
	Instructions    string     `json:"instructions"`
	Difficulty      Difficulty `json:"difficulty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	GifURL          string     `json:"gifUrl,omitempty"`
	VideoURL        string     `json:"videoUrl,omitempty"`
}
