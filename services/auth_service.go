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

const (
	registeredUsersKey = "registeredUsers"
	currentUserKey     = "currentUser"
)

var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailRegistered    = errors.New("este correo electrónico ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrNameRequired       = errors.New("el nombre es obligatorio")
	ErrInvalidGoal        = errors.New("objetivo no válido")
)

// AuthService owns the identity store: the registered-users collection and
// the current-session user record. Passwords stay inside this service.
type AuthService struct {
	store store.Store
}

func NewAuthService(s store.Store) *AuthService {
	return &AuthService{store: s}
}

func (s *AuthService) registered() ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := s.store.Get(registeredUsersKey, &users); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load registered users: %w", err)
	}
	return users, nil
}

func (s *AuthService) Register(email, password, name string) (models.User, error) {
	if strings.TrimSpace(name) == "" {
		return models.User{}, ErrNameRequired
	}

	users, err := s.registered()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrEmailRegistered
		}
	}

	rec := models.UserRecord{
		User: models.User{
			ID:    uuid.NewString(),
			Email: email,
			Name:  name,
		},
		Password: password,
	}
	users = append(users, rec)
	if err := s.store.Put(registeredUsersKey, users); err != nil {
		return models.User{}, fmt.Errorf("save registered users: %w", err)
	}
	if err := s.store.Put(currentUserKey, rec.User); err != nil {
		return models.User{}, fmt.Errorf("save current user: %w", err)
	}

	log.WithField("email", email).Info("user registered")
	return rec.User, nil
}

func (s *AuthService) Login(email, password string) (models.User, error) {
	users, err := s.registered()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		// Opaque string comparison: demo-grade contract, not production auth.
		if u.Email == email && u.Password == password {
			if err := s.store.Put(currentUserKey, u.User); err != nil {
				return models.User{}, fmt.Errorf("save current user: %w", err)
			}
			log.WithField("email", email).Info("user logged in")
			return u.User, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func (s *AuthService) Logout() error {
	return s.store.Delete(currentUserKey)
}

func (s *AuthService) GetUser(userID string) (models.User, error) {
	users, err := s.registered()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == userID {
			return u.User, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UserPatch carries the updatable profile fields; nil means "leave as is".
type UserPatch struct {
	Name *string
	Goal *models.UserGoal
}

func (s *AuthService) UpdateUser(userID string, patch UserPatch) (models.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.User{}, ErrNameRequired
	}
	if patch.Goal != nil && *patch.Goal != "" && !patch.Goal.Valid() {
		return models.User{}, ErrInvalidGoal
	}

	users, err := s.registered()
	if err != nil {
		return models.User{}, err
	}
	for i, u := range users {
		if u.ID != userID {
			continue
		}
		if patch.Name != nil {
			users[i].Name = *patch.Name
		}
		if patch.Goal != nil {
			users[i].Goal = *patch.Goal
		}
		if err := s.store.Put(registeredUsersKey, users); err != nil {
			return models.User{}, fmt.Errorf("save registered users: %w", err)
		}
		if err := s.store.Put(currentUserKey, users[i].User); err != nil {
			return models.User{}, fmt.Errorf("save current user: %w", err)
		}
		return users[i].User, nil
	}
	return models.User{}, ErrUserNotFound
}
