package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Areuc/MyrepsCL/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultGeminiModel = "gemini-2.5-flash-preview-04-17"
	defaultGeminiBase  = "https://generativelanguage.googleapis.com"

	msgMissingKey    = "Error: El servicio de IA no está disponible en este momento (API Key faltante)."
	msgEmptyResponse = "No se pudo generar una respuesta clara desde la IA. Intenta reformular tu solicitud."
	msgAdviceRequest = "Quiero un consejo del coach."
)

// CoachService builds coaching prompts from the user's goal and latest
// workout log and sends them to the Gemini text-generation API. It keeps a
// per-user transcript for display; service failures degrade to fallback
// messages and are never fatal.
type CoachService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string

	users    *AuthService
	workouts *WorkoutService

	mu          sync.Mutex
	transcripts map[string][]models.CoachMessage
}

func NewCoachService(users *AuthService, workouts *WorkoutService) *CoachService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &CoachService{
		client:      &http.Client{Timeout: 15 * time.Second},
		apiKey:      os.Getenv("GEMINI_API_KEY"),
		model:       model,
		baseURL:     defaultGeminiBase,
		users:       users,
		workouts:    workouts,
		transcripts: make(map[string][]models.CoachMessage),
	}
}

func coachMessage(text string, sender models.CoachSender) models.CoachMessage {
	return models.CoachMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

func goalLabel(goal models.UserGoal) string {
	if goal == "" {
		return "mejorar su condición física general"
	}
	return string(goal)
}

// Messages returns the user's transcript, seeding the greeting on first use.
func (s *CoachService) Messages(userID string) ([]models.CoachMessage, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.transcripts[userID]) == 0 {
		greeting := fmt.Sprintf(
			"¡Hola! Soy tu Myreps AI Coach. Estoy aquí para ayudarte a alcanzar tus metas de %q. ¿Listo para un consejo?",
			goalLabel(user.Goal))
		s.transcripts[userID] = []models.CoachMessage{coachMessage(greeting, models.SenderAI)}
	}
	out := make([]models.CoachMessage, len(s.transcripts[userID]))
	copy(out, s.transcripts[userID])
	return out, nil
}

// Advice requests one coaching message. The user's request and the reply (or
// a fallback describing the failure) are appended to the transcript and the
// reply returned; only a manual re-invocation retries.
func (s *CoachService) Advice(userID string) (models.CoachMessage, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return models.CoachMessage{}, err
	}
	lastLog, err := s.workouts.LatestLog(userID)
	if err != nil {
		return models.CoachMessage{}, err
	}

	// One outstanding call per service; a second invocation waits instead of
	// stacking requests.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts[userID] = append(s.transcripts[userID], coachMessage(msgAdviceRequest, models.SenderUser))

	text := s.generate(buildPrompt(user, lastLog))
	msg := coachMessage(text, models.SenderAI)
	s.transcripts[userID] = append(s.transcripts[userID], msg)
	return msg, nil
}

func buildPrompt(user models.User, lastLog *models.WorkoutLog) string {
	var sb bytes.Buffer
	fmt.Fprintf(&sb, "Eres Myreps AI Coach, un entrenador personal virtual experto y motivador para la app Myreps. "+
		"Estás hablando con un usuario. El objetivo principal del usuario es %q.\n\n", goalLabel(user.Goal))

	if lastLog != nil {
		routineName := lastLog.RoutineName
		if routineName == "" {
			routineName = "Entrenamiento personalizado"
		}
		fmt.Fprintf(&sb, "El usuario acaba de registrar un entrenamiento:\n")
		fmt.Fprintf(&sb, "- Nombre/Tipo: %s\n", routineName)
		fmt.Fprintf(&sb, "- Fecha: %s\n", lastLog.Date.Format("02/01/2006"))
		fmt.Fprintf(&sb, "- Duración: %d minutos\n", lastLog.DurationMinutes)

		if len(lastLog.CompletedExercises) > 0 {
			first := lastLog.CompletedExercises[0]
			if len(first.SetsPerformed) > 0 {
				fmt.Fprintf(&sb, "- Primer ejercicio registrado (ID): %s, realizó %d series. "+
					"Por ejemplo, en la primera serie hizo %d repeticiones con %.0fkg.\n",
					first.ExerciseID, len(first.SetsPerformed),
					first.SetsPerformed[0].Reps, first.SetsPerformed[0].Weight)
			}
			if first.DifficultyRating != "" {
				fmt.Fprintf(&sb, "- Calificó este ejercicio (o el entrenamiento general) como: %q.\n", first.DifficultyRating)
			}
		}
	} else {
		sb.WriteString("El usuario no ha registrado un entrenamiento recientemente.\n")
	}

	sb.WriteString("\nBasado en esta información (especialmente su objetivo y su último entrenamiento, si está disponible), " +
		"proporciona un consejo corto, específico, práctico y motivador en español. El consejo debe ser de 2-4 frases. " +
		"Anímale y ayúdale a progresar hacia su objetivo. Si el entrenamiento fue calificado como 'Difícil', sugiere cómo " +
		"ajustarlo o la importancia del descanso. Si fue 'Fácil', sugiere cómo progresar. Si fue 'Justo', refuerza " +
		"positivamente. Sé directo y útil.")
	return sb.String()
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// generate calls the text-generation API and maps every failure class to a
// displayed fallback string.
func (s *CoachService) generate(prompt string) string {
	if s.apiKey == "" {
		return msgMissingKey
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature: 0.7,
			TopK:        40,
			TopP:        0.95,
		},
	}
	b, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		log.WithError(err).Error("gemini call failed")
		return fmt.Sprintf("Error al comunicarse con el servicio de IA: %v.", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("reading gemini response failed")
		return fmt.Sprintf("Error al comunicarse con el servicio de IA: %v.", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.WithError(err).Error("decoding gemini response failed")
		return msgEmptyResponse
	}
	if resp.StatusCode != http.StatusOK {
		message := "Error desconocido"
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		log.WithField("status", resp.StatusCode).Error("gemini returned error: " + message)
		return fmt.Sprintf("Error al comunicarse con el servicio de IA: %s.", message)
	}

	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		if text := parsed.Candidates[0].Content.Parts[0].Text; text != "" {
			return text
		}
	}
	return msgEmptyResponse
}
