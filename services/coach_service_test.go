package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coachFixture(t *testing.T) (*CoachService, *WorkoutService, models.User) {
	t.Helper()
	st := store.NewMemoryStore()
	users := NewAuthService(st)
	routines := NewRoutineService(st)
	workouts := NewWorkoutService(st, routines, NewRealtimeHub())

	user, err := users.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)

	coach := &CoachService{
		client:      &http.Client{Timeout: time.Second},
		model:       defaultGeminiModel,
		users:       users,
		workouts:    workouts,
		transcripts: make(map[string][]models.CoachMessage),
	}
	return coach, workouts, user
}

func TestBuildPrompt_WithoutWorkout(t *testing.T) {
	prompt := buildPrompt(models.User{Name: "Ana", Goal: models.GoalMuscleGain}, nil)

	assert.Contains(t, prompt, "Myreps AI Coach")
	assert.Contains(t, prompt, string(models.GoalMuscleGain))
	assert.Contains(t, prompt, "no ha registrado un entrenamiento recientemente")
}

func TestBuildPrompt_GoalFallback(t *testing.T) {
	prompt := buildPrompt(models.User{Name: "Ana"}, nil)
	assert.Contains(t, prompt, "mejorar su condición física general")
}

func TestBuildPrompt_WithLastWorkout(t *testing.T) {
	last := &models.WorkoutLog{
		RoutineName:     "Push Day",
		Date:            time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 42,
		CompletedExercises: []models.LoggedExercise{
			{
				ExerciseID:       "ex1",
				SetsPerformed:    []models.LoggedSet{{Reps: 10, Weight: 40}},
				DifficultyRating: models.RatingHard,
			},
		},
	}
	prompt := buildPrompt(models.User{Goal: models.GoalEndurance}, last)

	assert.Contains(t, prompt, "Push Day")
	assert.Contains(t, prompt, "10/03/2025")
	assert.Contains(t, prompt, "42 minutos")
	assert.Contains(t, prompt, "ex1")
	assert.Contains(t, prompt, "10 repeticiones con 40kg")
	assert.Contains(t, prompt, string(models.RatingHard))
}

func TestCoachService_MessagesSeedsGreeting(t *testing.T) {
	coach, _, user := coachFixture(t)

	messages, err := coach.Messages(user.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, models.SenderAI, messages[0].Sender)
	assert.Contains(t, messages[0].Text, "¡Hola! Soy tu Myreps AI Coach.")

	// greeting is seeded only once
	again, err := coach.Messages(user.ID)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestCoachService_AdviceMissingKey(t *testing.T) {
	coach, _, user := coachFixture(t)
	coach.apiKey = ""

	msg, err := coach.Advice(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SenderAI, msg.Sender)
	assert.Equal(t, msgMissingKey, msg.Text)
}

func TestCoachService_AdviceSuccess(t *testing.T) {
	coach, _, user := coachFixture(t)

	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		gotPrompt = req.Contents[0].Parts[0].Text
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)
		assert.Equal(t, 40, req.GenerationConfig.TopK)
		assert.InDelta(t, 0.95, req.GenerationConfig.TopP, 0.001)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"¡Sigue así, Ana!"}]}}]}`))
	}))
	defer srv.Close()
	coach.apiKey = "test-key"
	coach.baseURL = srv.URL

	msg, err := coach.Advice(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "¡Sigue así, Ana!", msg.Text)
	assert.Contains(t, gotPrompt, "Myreps AI Coach")

	// the request and the reply both land on the transcript
	messages, err := coach.Messages(user.ID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(messages), 2)
	request := messages[len(messages)-2]
	assert.Equal(t, models.SenderUser, request.Sender)
	assert.Equal(t, msgAdviceRequest, request.Text)
	assert.Equal(t, "¡Sigue así, Ana!", messages[len(messages)-1].Text)
}

func TestCoachService_AdviceEmptyResponse(t *testing.T) {
	coach, _, user := coachFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()
	coach.apiKey = "test-key"
	coach.baseURL = srv.URL

	msg, err := coach.Advice(user.ID)
	require.NoError(t, err)
	assert.Equal(t, msgEmptyResponse, msg.Text)
}

func TestCoachService_AdviceServiceError(t *testing.T) {
	coach, _, user := coachFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()
	coach.apiKey = "bad-key"
	coach.baseURL = srv.URL

	msg, err := coach.Advice(user.ID)
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Error al comunicarse con el servicio de IA")
	assert.Contains(t, msg.Text, "API key not valid")
}

func TestCoachService_AdviceUnknownUser(t *testing.T) {
	coach, _, _ := coachFixture(t)
	_, err := coach.Advice("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
