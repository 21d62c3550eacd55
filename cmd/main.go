package main

import (
	"github.com/Areuc/MyrepsCL/catalog"
	"github.com/Areuc/MyrepsCL/config"
	"github.com/Areuc/MyrepsCL/controllers"
	"github.com/Areuc/MyrepsCL/routes"
	"github.com/Areuc/MyrepsCL/services"
	"github.com/Areuc/MyrepsCL/store"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	cat := catalog.New()
	hub := services.NewRealtimeHub()

	authSvc := services.NewAuthService(st)
	routineSvc := services.NewRoutineService(st)
	workoutSvc := services.NewWorkoutService(st, routineSvc, hub)
	coachSvc := services.NewCoachService(authSvc, workoutSvc)

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		User:     controllers.NewUserController(authSvc),
		Exercise: controllers.NewExerciseController(cat),
		Routine:  controllers.NewRoutineController(routineSvc),
		Workout:  controllers.NewWorkoutController(workoutSvc, cat),
		Coach:    controllers.NewCoachController(coachSvc),
		Realtime: controllers.NewRealtimeController(hub),
	})

	log.WithField("addr", cfg.Addr).Info("myreps backend listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
