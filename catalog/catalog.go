package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Areuc/MyrepsCL/models"
)

// UnknownExerciseName is the placeholder shown when a logged exercise ID no
// longer resolves against the catalog.
const UnknownExerciseName = "Ejercicio desconocido"

// Catalog is the static, ordered exercise reference set. It is built once at
// process start and is read-only afterwards.
type Catalog struct {
	exercises []models.Exercise
	byID      map[string]models.Exercise
}

func New() *Catalog {
	exercises := seedExercises()
	byID := make(map[string]models.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}
	return &Catalog{exercises: exercises, byID: byID}
}

// All returns the catalog in definition order.
func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// ByMuscleGroup filters with a case-insensitive substring match, preserving
// order.
func (c *Catalog) ByMuscleGroup(group string) []models.Exercise {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "" {
		return c.All()
	}
	var out []models.Exercise
	for _, ex := range c.exercises {
		if strings.Contains(strings.ToLower(ex.MuscleGroup), group) {
			out = append(out, ex)
		}
	}
	return out
}

func (c *Catalog) Find(id string) (models.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// NameOf resolves an exercise ID for display, degrading to a placeholder
// instead of failing the read.
func (c *Catalog) NameOf(id string) string {
	if ex, ok := c.byID[id]; ok {
		return ex.Name
	}
	return UnknownExerciseName
}

var nonSeedChars = regexp.MustCompile(`[^a-z0-9_]`)

func imageSeed(name string) string {
	seed := strings.ToLower(name)
	seed = strings.ReplaceAll(seed, " ", "_")
	return nonSeedChars.ReplaceAllString(seed, "")
}

func defaultInstructions(name string) string {
	return fmt.Sprintf("Realiza este ejercicio manteniendo una buena forma y controlando el movimiento. "+
		"Consulta a un profesional si tienes dudas sobre la técnica correcta para %s.", name)
}
