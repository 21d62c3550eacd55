package services

import (
	"testing"

	"github.com/Areuc/MyrepsCL/models"
	"github.com/Areuc/MyrepsCL/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(store.NewMemoryStore())

	user, err := svc.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Ana", user.Name)

	logged, err := svc.Login("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAuthService(st)

	_, err := svc.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)

	_, err = svc.Register("a@b.com", "other", "Eva")
	require.ErrorIs(t, err, ErrEmailRegistered)

	// collection unchanged
	var users []models.UserRecord
	require.NoError(t, st.Get("registeredUsers", &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestAuthService_RegisterRequiresName(t *testing.T) {
	svc := NewAuthService(store.NewMemoryStore())
	_, err := svc.Register("a@b.com", "secret1", "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := NewAuthService(store.NewMemoryStore())
	_, err := svc.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)

	_, err = svc.Login("a@b.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("missing@b.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateUser(t *testing.T) {
	svc := NewAuthService(store.NewMemoryStore())
	user, err := svc.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)

	goal := models.GoalMuscleGain
	updated, err := svc.UpdateUser(user.ID, UserPatch{Goal: &goal})
	require.NoError(t, err)
	assert.Equal(t, models.GoalMuscleGain, updated.Goal)
	assert.Equal(t, "Ana", updated.Name)

	bad := models.UserGoal("Volar")
	_, err = svc.UpdateUser(user.ID, UserPatch{Goal: &bad})
	assert.ErrorIs(t, err, ErrInvalidGoal)

	_, err = svc.UpdateUser("missing", UserPatch{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_LogoutClearsCurrentUser(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAuthService(st)
	_, err := svc.Register("a@b.com", "secret1", "Ana")
	require.NoError(t, err)

	var current models.User
	require.NoError(t, st.Get("currentUser", &current))

	require.NoError(t, svc.Logout())
	assert.ErrorIs(t, st.Get("currentUser", &current), store.ErrKeyNotFound)
}
