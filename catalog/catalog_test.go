package catalog_test

import (
	"testing"

	"github.com/Areuc/MyrepsCL/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SequentialIDs(t *testing.T) {
	cat := catalog.New()
	all := cat.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "ex1", all[0].ID)
	assert.Equal(t, "Press de Banca con Barra", all[0].Name)

	for _, ex := range all {
		found, ok := cat.Find(ex.ID)
		require.True(t, ok)
		assert.Equal(t, ex.Name, found.Name)
	}
}

func TestCatalog_FullDataset(t *testing.T) {
	cat := catalog.New()
	all := cat.All()
	assert.Len(t, all, 79)

	names := make(map[string]bool, len(all))
	for _, ex := range all {
		names[ex.Name] = true
	}
	for _, name := range []string{
		"Peso Muerto en Máquina Smith",
		"Reverse Fly en Máquina Contractora (Pec Deck Inverso)",
		"Curl de Bíceps en Máquina Scott (Predicador)",
		"Curl Isométrico con Toalla",
		"Patadas de Tríceps con Mancuerna",
		"Fondos en Máquina (Triceps Dips Machine)",
		"Crunch en Máquina de Abdominales",
		"Elevaciones de Piernas en Banco Declinado",
		"Curl de Muñeca en Máquina",
		"Apretar Toalla/Pelota",
		"Remo al Cuello en Polea Alta",
	} {
		assert.True(t, names[name], name)
	}
}

func TestCatalog_EveryExerciseHasInstructionsAndImage(t *testing.T) {
	for _, ex := range catalog.New().All() {
		assert.NotEmpty(t, ex.Instructions, ex.Name)
		assert.Contains(t, ex.ImageURL, "picsum.photos/seed/")
	}
}

func TestCatalog_ByMuscleGroup(t *testing.T) {
	cat := catalog.New()

	chest := cat.ByMuscleGroup("pecho")
	require.NotEmpty(t, chest)
	for _, ex := range chest {
		assert.Contains(t, ex.MuscleGroup, "Pecho")
	}

	assert.Empty(t, cat.ByMuscleGroup("natación"))
	assert.Len(t, cat.ByMuscleGroup(""), len(cat.All()))
}

func TestCatalog_NameOfUnknownID(t *testing.T) {
	cat := catalog.New()
	assert.Equal(t, catalog.UnknownExerciseName, cat.NameOf("ex9999"))
	assert.Equal(t, "Press de Banca con Barra", cat.NameOf("ex1"))
}
