package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrRoutineNotFound   = errors.New("rutina no encontrada")
	ErrRoutineName       = errors.New("la rutina necesita un nombre")
	ErrRoutineNoExercise = errors.New("la rutina necesita al menos un ejercicio")
	ErrRoutineExercise   = errors.New("entrada de ejercicio no válida")
)

// RoutineService is CRUD over the per-user ordered routine collection.
// Updates replace the exercise entries wholesale; deletes never cascade into
// workout logs.
type RoutineService struct {
	store store.Store
}

func NewRoutineService(s store.Store) *RoutineService {
	return &RoutineService{store: s}
}

func routinesKey(userID string) string {
	return "routines_" + userID
}

// RoutineInput is the caller-provided routine shape; ID and owner are
// assigned by the service.
type RoutineInput struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Exercises   []models.RoutineExercise `json:"exercises"`
}

func (in RoutineInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrRoutineName
	}
	if len(in.Exercises) == 0 {
		return ErrRoutineNoExercise
	}
	for _, ex := range in.Exercises {
		if ex.ExerciseID == "" || ex.Sets <= 0 || ex.RestTimeSeconds < 0 {
			return ErrRoutineExercise
		}
	}
	return nil
}

func (s *RoutineService) List(userID string) ([]models.Routine, error) {
	var routines []models.Routine
	if err := s.store.Get(routinesKey(userID), &routines); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load routines: %w", err)
	}
	return routines, nil
}

func (s *RoutineService) save(userID string, routines []models.Routine) error {
	if err := s.store.Put(routinesKey(userID), routines); err != nil {
		return fmt.Errorf("save routines: %w", err)
	}
	return nil
}

func (s *RoutineService) Create(userID string, in RoutineInput) (models.Routine, error) {
	if err := in.validate(); err != nil {
		return models.Routine{}, err
	}

	routines, err := s.List(userID)
	if err != nil {
		return models.Routine{}, err
	}

	routine := models.Routine{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Exercises:   in.Exercises,
		CreatedBy:   userID,
	}
	if err := s.save(userID, append(routines, routine)); err != nil {
		return models.Routine{}, err
	}

	log.WithFields(log.Fields{"userID": userID, "routine": routine.Name}).Info("routine created")
	return routine, nil
}

func (s *RoutineService) Get(userID, routineID string) (models.Routine, error) {
	routines, err := s.List(userID)
	if err != nil {
		return models.Routine{}, err
	}
	for _, r := range routines {
		if r.ID == routineID {
			return r, nil
		}
	}
	return models.Routine{}, ErrRoutineNotFound
}

func (s *RoutineService) Update(userID, routineID string, in RoutineInput) (models.Routine, error) {
	if err := in.validate(); err != nil {
		return models.Routine{}, err
	}

	routines, err := s.List(userID)
	if err != nil {
		return models.Routine{}, err
	}
	for i, r := range routines {
		if r.ID != routineID {
			continue
		}
		routines[i].Name = in.Name
		routines[i].Description = in.Description
		routines[i].Exercises = in.Exercises
		if err := s.save(userID, routines); err != nil {
			return models.Routine{}, err
		}
		return routines[i], nil
	}
	return models.Routine{}, ErrRoutineNotFound
}

func (s *RoutineService) Delete(userID, routineID string) error {
	routines, err := s.List(userID)
	if err != nil {
		return err
	}
	for i, r := range routines {
		if r.ID == routineID {
			routines = append(routines[:i], routines[i+1:]...)
			return s.save(userID, routines)
		}
	}
	return ErrRoutineNotFound
}
