package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type SessionState string

const (
	StateInProgress     SessionState = "inProgress"
	StateAwaitingRating SessionState = "awaitingDifficultyRating"
)

var (
	ErrNoActiveSession      = errors.New("no hay un entrenamiento en curso")
	ErrSessionNotInProgress = errors.New("el entrenamiento ya no admite cambios")
	ErrSessionInProgress    = errors.New("el entrenamiento aún no ha terminado")
	ErrInvalidRating        = errors.New("calificación no válida")
)

// workoutSession drives one workout attempt from a routine to a finalized
// log. Instances live only in memory; nothing is persisted until
// RateAndFinish commits the log.
type workoutSession struct {
	id          string
	userID      string
	routineID   string
	routineName string
	state       SessionState
	cursor      int
	exercises   []models.LoggedExercise
	prescribed  []models.RoutineExercise
	startedAt   time.Time
	stopTick    func()
}

// SessionView is the JSON snapshot of an active session.
type SessionView struct {
	ID             string                   `json:"id"`
	RoutineID      string                   `json:"routineId"`
	RoutineName    string                   `json:"routineName"`
	State          SessionState             `json:"state"`
	ExerciseIndex  int                      `json:"exerciseIndex"`
	Prescribed     []models.RoutineExercise `json:"prescribed"`
	Exercises      []models.LoggedExercise  `json:"exercises"`
	ElapsedSeconds int                      `json:"elapsedSeconds"`
}

// WorkoutService owns the active sessions (one per user) and the append-only
// workout log collections.
type WorkoutService struct {
	mu       sync.Mutex
	store    store.Store
	routines *RoutineService
	hub      *RealtimeHub
	now      func() time.Time
	sessions map[string]*workoutSession
}

func NewWorkoutService(s store.Store, routines *RoutineService, hub *RealtimeHub) *WorkoutService {
	return &WorkoutService{
		store:    s,
		routines: routines,
		hub:      hub,
		now:      time.Now,
		sessions: make(map[string]*workoutSession),
	}
}

func logsKey(userID string) string {
	return "workoutLogs_" + userID
}

func (s *WorkoutService) Start(userID, routineID string) (SessionView, error) {
	routine, err := s.routines.Get(userID, routineID)
	if err != nil {
		return SessionView{}, err
	}

	exercises := make([]models.LoggedExercise, len(routine.Exercises))
	for i, ex := range routine.Exercises {
		exercises[i] = models.LoggedExercise{
			ExerciseID:    ex.ExerciseID,
			SetsPerformed: make([]models.LoggedSet, ex.Sets),
		}
	}

	sess := &workoutSession{
		id:          uuid.NewString(),
		userID:      userID,
		routineID:   routine.ID,
		routineName: routine.Name,
		state:       StateInProgress,
		exercises:   exercises,
		prescribed:  routine.Exercises,
		startedAt:   s.now(),
	}
	if len(exercises) == 0 {
		// ad-hoc empty routine: nothing to log, straight to rating
		sess.state = StateAwaitingRating
	}

	s.startTicker(sess)

	s.mu.Lock()
	if old := s.sessions[userID]; old != nil && old.stopTick != nil {
		old.stopTick()
	}
	s.sessions[userID] = sess
	view := s.view(sess)
	s.mu.Unlock()

	log.WithFields(log.Fields{"userID": userID, "routine": routine.Name}).Info("workout session started")
	return view, nil
}

func (s *WorkoutService) view(sess *workoutSession) SessionView {
	exercises := make([]models.LoggedExercise, len(sess.exercises))
	for i, ex := range sess.exercises {
		exercises[i] = ex
		exercises[i].SetsPerformed = append([]models.LoggedSet(nil), ex.SetsPerformed...)
	}
	return SessionView{
		ID:             sess.id,
		RoutineID:      sess.routineID,
		RoutineName:    sess.routineName,
		State:          sess.state,
		ExerciseIndex:  sess.cursor,
		Prescribed:     sess.prescribed,
		Exercises:      exercises,
		ElapsedSeconds: int(s.now().Sub(sess.startedAt).Seconds()),
	}
}

func (s *WorkoutService) Session(userID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return SessionView{}, ErrNoActiveSession
	}
	return s.view(sess), nil
}

// Advance moves the cursor forward; at the last exercise it transitions to
// the rating prompt instead, never past it.
func (s *WorkoutService) Advance(userID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return SessionView{}, ErrNoActiveSession
	}
	if sess.state != StateInProgress {
		return SessionView{}, ErrSessionNotInProgress
	}
	if sess.cursor < len(sess.exercises)-1 {
		sess.cursor++
	} else {
		sess.state = StateAwaitingRating
	}
	return s.view(sess), nil
}

// Retreat moves the cursor back; at cursor 0 it is a no-op.
func (s *WorkoutService) Retreat(userID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return SessionView{}, ErrNoActiveSession
	}
	if sess.state != StateInProgress {
		return SessionView{}, ErrSessionNotInProgress
	}
	if sess.cursor > 0 {
		sess.cursor--
	}
	return s.view(sess), nil
}

// setField selects which LoggedSet field recordSet mutates. Explicit variants
// dispatched through one reducer replace a name-keyed dynamic setter.
type setField int

const (
	fieldReps setField = iota
	fieldWeight
)

func (s *WorkoutService) RecordReps(userID string, exerciseIdx, setIdx int, value string) error {
	return s.recordSet(userID, exerciseIdx, setIdx, fieldReps, value)
}

func (s *WorkoutService) RecordWeight(userID string, exerciseIdx, setIdx int, value string) error {
	return s.recordSet(userID, exerciseIdx, setIdx, fieldWeight, value)
}

func (s *WorkoutService) recordSet(userID string, exerciseIdx, setIdx int, field setField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return ErrNoActiveSession
	}
	if sess.state != StateInProgress {
		return ErrSessionNotInProgress
	}
	if exerciseIdx < 0 || exerciseIdx >= len(sess.exercises) {
		return nil
	}
	sets := sess.exercises[exerciseIdx].SetsPerformed
	if setIdx < 0 || setIdx >= len(sets) {
		return nil
	}

	// Empty input clears to 0; non-numeric or negative input leaves the
	// field unchanged.
	n := 0
	if value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return nil
		}
		n = parsed
	}

	switch field {
	case fieldReps:
		sets[setIdx].Reps = n
	case fieldWeight:
		sets[setIdx].Weight = float64(n)
	}
	return nil
}

func (s *WorkoutService) RecordNotes(userID string, exerciseIdx int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return ErrNoActiveSession
	}
	if sess.state != StateInProgress {
		return ErrSessionNotInProgress
	}
	if exerciseIdx < 0 || exerciseIdx >= len(sess.exercises) {
		return nil
	}
	sess.exercises[exerciseIdx].Notes = notes
	return nil
}

// RateAndFinish freezes the session into a workout log. The rating (may be
// empty = omitted) is applied uniformly to every exercise, a deliberate
// deviation from stamping only the final one.
func (s *WorkoutService) RateAndFinish(userID string, rating models.DifficultyRating) (models.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return models.WorkoutLog{}, ErrNoActiveSession
	}
	if sess.state != StateAwaitingRating {
		return models.WorkoutLog{}, ErrSessionInProgress
	}
	if rating != "" && !rating.Valid() {
		return models.WorkoutLog{}, ErrInvalidRating
	}

	if rating != "" {
		for i := range sess.exercises {
			sess.exercises[i].DifficultyRating = rating
		}
	}

	now := s.now()
	workoutLog := models.WorkoutLog{
		ID:                 uuid.NewString(),
		UserID:             userID,
		RoutineID:          sess.routineID,
		RoutineName:        sess.routineName,
		Date:               now,
		CompletedExercises: sess.exercises,
		DurationMinutes:    int(now.Sub(sess.startedAt).Minutes()),
	}

	logs, err := s.logs(userID)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	if err := s.store.Put(logsKey(userID), append(logs, workoutLog)); err != nil {
		return models.WorkoutLog{}, fmt.Errorf("save workout logs: %w", err)
	}

	if sess.stopTick != nil {
		sess.stopTick()
	}
	delete(s.sessions, userID)

	log.WithFields(log.Fields{
		"userID":   userID,
		"routine":  sess.routineName,
		"duration": workoutLog.DurationMinutes,
	}).Info("workout completed")
	return workoutLog, nil
}

// Abandon drops the active session without writing a log.
func (s *WorkoutService) Abandon(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		return ErrNoActiveSession
	}
	if sess.stopTick != nil {
		sess.stopTick()
	}
	delete(s.sessions, userID)
	return nil
}

func (s *WorkoutService) logs(userID string) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	if err := s.store.Get(logsKey(userID), &logs); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load workout logs: %w", err)
	}
	return logs, nil
}

func (s *WorkoutService) Logs(userID string) ([]models.WorkoutLog, error) {
	return s.logs(userID)
}

// LatestLog returns nil when the user has no workout history.
func (s *WorkoutService) LatestLog(userID string) (*models.WorkoutLog, error) {
	logs, err := s.logs(userID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[len(logs)-1], nil
}
