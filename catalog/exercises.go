package catalog

import (
	"fmt"

	"github.com/Areuc/MyrepsCL/models"
)

type seedEntry struct {
	name         string
	muscleGroup  string
	equipment    string
	difficulty   models.Difficulty
	instructions string
	gifURL       string
}

func seedExercises() []models.Exercise {
	out := make([]models.Exercise, len(seedData))
	for i, e := range seedData {
		instructions := e.instructions
		if instructions == "" {
			instructions = defaultInstructions(e.name)
		}
		out[i] = models.Exercise{
			ID:              fmt.Sprintf("ex%d", i+1),
			Name:            e.name,
			MuscleGroup:     e.muscleGroup,
			EquipmentNeeded: e.equipment,
			Instructions:    instructions,
			Difficulty:      e.difficulty,
			ImageURL:        fmt.Sprintf("https://picsum.photos/seed/%s/300/200", imageSeed(e.name)),
			GifURL:          e.gifURL,
		}
	}
	return out
}

var seedData = []seedEntry{
	// Pecho
	{name: "Press de Banca con Barra", muscleGroup: "Pecho", equipment: "Barra, Banco", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/0hoNLcggDG0AAAAC/bench-press.gif"},
	{name: "Press Inclinado con Mancuernas", muscleGroup: "Pecho", equipment: "Mancuernas, Banco Inclinado", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/Nw3QMwEoJTcAAAAC/chest-incline-100.gif"},
	{name: "Aperturas con Mancuernas", muscleGroup: "Pecho", equipment: "Mancuernas, Banco", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/oJXOnsC72qMAAAAC/crussifixo-no-banco-com-halteres.gif"},
	{name: "Press Declinado con Barra", muscleGroup: "Pecho", equipment: "Barra, Banco Declinado", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/OgjLzf5LkqAAAAAC/decline-press.gif"},
	{name: "Press de Pecho en Máquina", muscleGroup: "Pecho", equipment: "Máquina de Press de Pecho", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/2eqEvsYtMMIAAAAC/chest-press-dwayne-johnson.gif"},
	{name: "Aperturas en Máquina Contractora (Pec Deck)", muscleGroup: "Pecho", equipment: "Máquina Contractora (Pec Deck)", difficulty: models.DifficultyIntermediate, gifURL: "https://media1.tenor.com/m/k5ahyb6VmUkAAAAC/pec.gif"},
	{name: "Cruce Poleas", muscleGroup: "Pecho", equipment: "Poleas", difficulty: models.DifficultyIntermediate, gifURL: "https://fitcron.com/wp-content/uploads/2021/03/01881301-Cable-Middle-Fly_Chest_720.gif"},
	{name: "Flexiones (Push-ups)", muscleGroup: "Pecho, Hombros, Tríceps", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner, gifURL: "https://fitcron.com/wp-content/uploads/2021/03/13111301-Wide-Hand-Push-up_Chest_720.gif"},
	{name: "Press Frontal Cerrado con Poleas", muscleGroup: "Pecho (inferior), Tríceps", equipment: "Máquina Poleas", difficulty: models.DifficultyBeginner, gifURL: "https://fitcron.com/wp-content/uploads/2021/03/33641301-Cable-Seating-Close-Press_Upper-Arms_720.gif"},
	{name: "Flexiones Declinadas", muscleGroup: "Pecho (superior), Hombros, Tríceps", equipment: "Peso Corporal, Elevación para pies", difficulty: models.DifficultyIntermediate, gifURL: "https://fitcron.com/wp-content/uploads/2021/03/02791301-Decline-Push-Up-m_chest_720.gif"},

	// Espalda
	{name: "Peso Muerto Convencional", muscleGroup: "Espalda, Piernas (Global)", equipment: "Barra", difficulty: models.DifficultyAdvanced},
	{name: "Remo con Barra (Pendlay o Yates)", muscleGroup: "Espalda", equipment: "Barra", difficulty: models.DifficultyIntermediate},
	{name: "Remo con Mancuerna (a una mano)", muscleGroup: "Espalda", equipment: "Mancuerna, Banco", difficulty: models.DifficultyIntermediate},
	{name: "Dominadas (Pull-ups) con Lastre", muscleGroup: "Espalda, Bíceps", equipment: "Barra de Dominadas, Lastre", difficulty: models.DifficultyAdvanced},
	{name: "Jalón al Pecho (Lat Pulldown)", muscleGroup: "Espalda", equipment: "Máquina de Jalón (Polea Alta)", difficulty: models.DifficultyIntermediate},
	{name: "Remo Sentado en Máquina (Polea Baja)", muscleGroup: "Espalda", equipment: "Máquina de Remo (Polea Baja)", difficulty: models.DifficultyIntermediate},
	{name: "Jalón Tras Nuca", muscleGroup: "Espalda", equipment: "Máquina de Jalón (Polea Alta)", difficulty: models.DifficultyIntermediate, instructions: "Con cuidado y buena movilidad de hombros."},
	{name: "Dominadas (Pull-ups)", muscleGroup: "Espalda, Bíceps", equipment: "Barra de Dominadas", difficulty: models.DifficultyIntermediate},
	{name: "Remo Invertido (Australian Pull-ups)", muscleGroup: "Espalda, Bíceps", equipment: "Barra Baja o Anillas", difficulty: models.DifficultyBeginner},
	{name: "Superman", muscleGroup: "Espalda (Lumbar)", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner},

	// Piernas (cuádriceps)
	{name: "Sentadilla con Barra Trasera", muscleGroup: "Piernas (Cuádriceps, Glúteos)", equipment: "Barra, Rack", difficulty: models.DifficultyAdvanced},
	{name: "Zancadas (Lunges) con Mancuernas", muscleGroup: "Piernas (Cuádriceps, Glúteos)", equipment: "Mancuernas (opcional)", difficulty: models.DifficultyIntermediate},
	{name: "Sentadilla Frontal con Barra", muscleGroup: "Piernas (Cuádriceps)", equipment: "Barra, Rack", difficulty: models.DifficultyAdvanced},
	{name: "Extensión de Piernas en Máquina", muscleGroup: "Piernas (Cuádriceps)", equipment: "Máquina de Extensión de Piernas", difficulty: models.DifficultyIntermediate},
	{name: "Sentadilla Hack en Máquina", muscleGroup: "Piernas (Cuádriceps)", equipment: "Máquina Hack Squat", difficulty: models.DifficultyIntermediate},
	{name: "Prensa de Piernas 45°", muscleGroup: "Piernas (Cuádriceps, Glúteos)", equipment: "Máquina Prensa de Piernas", difficulty: models.DifficultyIntermediate},
	{name: "Sentadillas con Salto (Jump Squats)", muscleGroup: "Piernas (Cuádriceps, Glúteos)", equipment: "Peso Corporal", difficulty: models.DifficultyIntermediate},
	{name: "Zancadas Caminando", muscleGroup: "Piernas (Cuádriceps, Glúteos)", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner},

	// Piernas (isquiotibiales y glúteos)
	{name: "Peso Muerto Rumano (RDL)", muscleGroup: "Piernas (Isquiotibiales, Glúteos)", equipment: "Barra o Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Hip Thrust con Barra", muscleGroup: "Piernas (Glúteos, Isquiotibiales)", equipment: "Barra, Banco", difficulty: models.DifficultyIntermediate},
	{name: "Sentadilla Sumo con Barra o Mancuerna", muscleGroup: "Piernas (Aductores, Glúteos, Cuádriceps)", equipment: "Barra o Mancuerna", difficulty: models.DifficultyIntermediate},
	{name: "Curl Femoral Tumbado en Máquina", muscleGroup: "Piernas (Isquiotibiales)", equipment: "Máquina de Curl Femoral", difficulty: models.DifficultyIntermediate},
	{name: "Patada de Glúteo en Máquina o Polea", muscleGroup: "Piernas (Glúteos)", equipment: "Máquina de Patada de Glúteo o Polea", difficulty: models.DifficultyIntermediate},
	{name: "Peso Muerto en Máquina Smith", muscleGroup: "Piernas (Isquiotibiales, Glúteos)", equipment: "Máquina Smith", difficulty: models.DifficultyIntermediate},
	{name: "Elevaciones de Cadera (Glute Bridges)", muscleGroup: "Piernas (Glúteos)", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner},
	{name: "Puente de Glúteos a una Pierna", muscleGroup: "Piernas (Glúteos)", equipment: "Peso Corporal", difficulty: models.DifficultyIntermediate},

	// Hombros
	{name: "Press Militar con Barra (De pie)", muscleGroup: "Hombros", equipment: "Barra", difficulty: models.DifficultyAdvanced},
	{name: "Elevaciones Laterales con Mancuernas", muscleGroup: "Hombros (Lateral)", equipment: "Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Elevaciones Frontales con Mancuernas", muscleGroup: "Hombros (Anterior)", equipment: "Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Pájaros (Bent-Over Lateral Raises)", muscleGroup: "Hombros (Posterior)", equipment: "Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Press de Hombros en Máquina", muscleGroup: "Hombros", equipment: "Máquina de Press de Hombros", difficulty: models.DifficultyIntermediate},
	{name: "Elevaciones Laterales en Polea", muscleGroup: "Hombros (Lateral)", equipment: "Polea", difficulty: models.DifficultyIntermediate},
	{name: "Reverse Fly en Máquina Contractora (Pec Deck Inverso)", muscleGroup: "Hombros (Posterior)", equipment: "Máquina Contractora (Pec Deck)", difficulty: models.DifficultyIntermediate},
	{name: "Pike Push-ups", muscleGroup: "Hombros, Tríceps", equipment: "Peso Corporal", difficulty: models.DifficultyIntermediate},
	{name: "Wall Walks", muscleGroup: "Hombros, Core", equipment: "Peso Corporal, Pared", difficulty: models.DifficultyAdvanced},

	// Bíceps
	{name: "Curl de Bíceps con Barra Recta o Z", muscleGroup: "Bíceps", equipment: "Barra Recta o Z", difficulty: models.DifficultyIntermediate},
	{name: "Curl de Bíceps con Mancuernas (Alterno o Simultáneo)", muscleGroup: "Bíceps", equipment: "Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Curl Martillo con Mancuernas", muscleGroup: "Bíceps, Antebrazo", equipment: "Mancuernas", difficulty: models.DifficultyIntermediate},
	{name: "Curl de Bíceps en Polea Baja", muscleGroup: "Bíceps", equipment: "Polea Baja con Barra o Cuerda", difficulty: models.DifficultyIntermediate},
	{name: "Curl de Bíceps en Máquina Scott (Predicador)", muscleGroup: "Bíceps", equipment: "Máquina Scott", difficulty: models.DifficultyIntermediate},
	{name: "Curl Concentrado con Mancuerna", muscleGroup: "Bíceps", equipment: "Mancuerna, Banco", difficulty: models.DifficultyIntermediate},
	{name: "Chin-ups (Dominadas con Agarre Supino)", muscleGroup: "Bíceps, Espalda", equipment: "Barra de Dominadas", difficulty: models.DifficultyIntermediate},
	{name: "Curl Isométrico con Toalla", muscleGroup: "Bíceps", equipment: "Toalla", difficulty: models.DifficultyBeginner},

	// Tríceps
	{name: "Press Francés (Skullcrushers) con Barra", muscleGroup: "Tríceps", equipment: "Barra Z o Recta, Banco", difficulty: models.DifficultyIntermediate},
	{name: "Extensiones de Tríceps con Mancuerna (Tras nuca, a una o dos manos)", muscleGroup: "Tríceps", equipment: "Mancuerna", difficulty: models.DifficultyIntermediate},
	{name: "Patadas de Tríceps con Mancuerna", muscleGroup: "Tríceps", equipment: "Mancuerna", difficulty: models.DifficultyIntermediate},
	{name: "Extensiones de Tríceps en Polea Alta (Jalón con Cuerda o Barra)", muscleGroup: "Tríceps", equipment: "Polea Alta con Cuerda o Barra", difficulty: models.DifficultyIntermediate},
	{name: "Fondos en Máquina (Triceps Dips Machine)", muscleGroup: "Tríceps", equipment: "Máquina de Fondos", difficulty: models.DifficultyIntermediate},
	{name: "Fondos en Paralelas (Dips)", muscleGroup: "Tríceps, Pecho, Hombros", equipment: "Barras Paralelas", difficulty: models.DifficultyAdvanced},
	{name: "Fondos entre Bancos", muscleGroup: "Tríceps", equipment: "Dos Bancos", difficulty: models.DifficultyIntermediate},

	// Abdominales
	{name: "Crunch con Peso (Disco sobre el pecho)", muscleGroup: "Abdominales", equipment: "Disco o Mancuerna", difficulty: models.DifficultyIntermediate},
	{name: "Elevaciones de Piernas Colgado (con o sin mancuerna)", muscleGroup: "Abdominales (Inferior)", equipment: "Barra de Dominadas, Mancuerna (opcional)", difficulty: models.DifficultyAdvanced},
	{name: "Crunch en Máquina de Abdominales", muscleGroup: "Abdominales", equipment: "Máquina de Crunch", difficulty: models.DifficultyIntermediate},
	{name: "Elevaciones de Piernas en Banco Declinado", muscleGroup: "Abdominales (Inferior)", equipment: "Banco Declinado", difficulty: models.DifficultyIntermediate},
	{name: "Plancha Abdominal (Plank)", muscleGroup: "Core (Abdominales, Lumbar)", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner},
	{name: "Crunches (Encogimientos Abdominales)", muscleGroup: "Abdominales (Superior)", equipment: "Peso Corporal", difficulty: models.DifficultyBeginner},
	{name: "Bicycle Crunch (Encogimientos Bicicleta)", muscleGroup: "Abdominales (Oblicuos, Superior)", equipment: "Peso Corporal", difficulty: models.DifficultyIntermediate},
	{name: "V-ups (Encogimientos en V)", muscleGroup: "Abdominales (Global)", equipment: "Peso Corporal", difficulty: models.DifficultyAdvanced},

	// Antebrazos
	{name: "Curl de Antebrazo Inverso con Barra", muscleGroup: "Antebrazos (Extensores)", equipment: "Barra", difficulty: models.DifficultyIntermediate},
	{name: "Curl de Muñeca con Barra o Mancuernas (Wrist Curls)", muscleGroup: "Antebrazos (Flexores)", equipment: "Barra o Mancuernas, Banco", difficulty: models.DifficultyIntermediate},
	{name: "Paseo del Granjero (Farmer's Walk)", muscleGroup: "Antebrazos (Agarre), Trapecios, Core", equipment: "Mancuernas Pesadas o Kettlebells", difficulty: models.DifficultyIntermediate},
	{name: "Curl de Muñeca en Máquina", muscleGroup: "Antebrazos", equipment: "Máquina de Curl de Muñeca", difficulty: models.DifficultyIntermediate},
	{name: "Colgarse de Barra (Dead Hang)", muscleGroup: "Antebrazos (Agarre)", equipment: "Barra de Dominadas", difficulty: models.DifficultyBeginner},
	{name: "Apretar Toalla/Pelota", muscleGroup: "Antebrazos (Agarre)", equipment: "Toalla, Pelota de Tenis", difficulty: models.DifficultyBeginner},

	// Trapecios
	{name: "Encogimientos de Hombros con Barra (Shrugs)", muscleGroup: "Trapecios", equipment: "Barra", difficulty: models.DifficultyIntermediate},
	{name: "Remo al Cuello con Barra (Upright Row)", muscleGroup: "Trapecios, Hombros", equipment: "Barra", difficulty: models.DifficultyIntermediate, instructions: "Realizar con precaución para evitar pinzamiento de hombro."},
	{name: "Encogimientos de Hombros en Máquina", muscleGroup: "Trapecios", equipment: "Máquina de Encogimientos", difficulty: models.DifficultyIntermediate},
	{name: "Remo al Cuello en Polea Alta", muscleGroup: "Trapecios, Hombros", equipment: "Polea Alta con Barra", difficulty: models.DifficultyIntermediate},
	{name: "Encogimientos de Hombros con Bandas Elásticas (Band Shrugs)", muscleGroup: "Trapecios", equipment: "Banda Elástica", difficulty: models.DifficultyBeginner},
}
