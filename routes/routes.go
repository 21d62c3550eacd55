package routes

import (
	"github.com/Areuc/MyrepsCL/controllers"
	"github.com/Areuc/MyrepsCL/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Exercise *controllers.ExerciseController
	Routine  *controllers.RoutineController
	Workout  *controllers.WorkoutController
	Coach    *controllers.CoachController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/auth/logout", ctl.Auth.Logout)

		protected.GET("/user/profile", ctl.User.GetProfile)
		protected.PUT("/user/profile", ctl.User.UpdateProfile)

		protected.GET("/exercises", ctl.Exercise.List)
		protected.GET("/exercises/:id", ctl.Exercise.Get)

		protected.GET("/routines", ctl.Routine.List)
		protected.POST("/routines", ctl.Routine.Create)
		protected.GET("/routines/:id", ctl.Routine.Get)
		protected.PUT("/routines/:id", ctl.Routine.Update)
		protected.DELETE("/routines/:id", ctl.Routine.Delete)

		protected.GET("/workouts", ctl.Workout.ListLogs)
		protected.GET("/workouts/latest", ctl.Workout.LatestLog)
		protected.POST("/workouts/session", ctl.Workout.StartSession)
		protected.GET("/workouts/session", ctl.Workout.GetSession)
		protected.DELETE("/workouts/session", ctl.Workout.Abandon)
		protected.POST("/workouts/session/advance", ctl.Workout.Advance)
		protected.POST("/workouts/session/retreat", ctl.Workout.Retreat)
		protected.POST("/workouts/session/sets", ctl.Workout.RecordSet)
		protected.POST("/workouts/session/notes", ctl.Workout.RecordNotes)
		protected.POST("/workouts/session/finish", ctl.Workout.Finish)

		protected.GET("/coach/messages", ctl.Coach.Messages)
		protected.POST("/coach/advice", ctl.Coach.Advice)

		protected.GET("/ws/workout", ctl.Realtime.WorkoutWS)
	}

	return r
}
