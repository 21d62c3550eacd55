package models

type UserGoal string

const (
	GoalMuscleGain     UserGoal = "Ganar Músculo"
	GoalWeightLoss     UserGoal = "Perder Peso"
	GoalEndurance      UserGoal = "Mejorar Resistencia"
	GoalGeneralFitness UserGoal = "Fitness General"
)

func (g UserGoal) Valid() bool {
	switch g {
	case GoalMuscleGain, GoalWeightLoss, GoalEndurance, GoalGeneralFitness:
		return true
	}
	return false
}

// User is the public profile shape. Credential data never leaves the
// auth service.
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Goal  UserGoal `json:"goal,omitempty"`
}

// UserRecord is the persisted shape in the registered-users collection.
// The password is stored and compared as an opaque string: demo-grade auth,
// not production auth.
type UserRecord struct {
	User
	Password string `json:"password"`
}
