package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"seungpyo.lee/PeakTrack/pkg/jwt"
	"seungpyo.lee/PeakTrack/pkg/middleware"
)

type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Workout  *WorkoutHandler
	Exercise *ExerciseHandler
}

// NewRouter wires every route. limiter may be nil to disable rate limiting on /auth.
func NewRouter(h Handlers, tokenManager jwt.TokenManager, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.AuthMiddleware(tokenManager)
	requireAccount := h.User.RequireAccount()

	auth := r.Group("/auth")
	if limiter != nil {
		auth.Use(limiter.Middleware())
	}
	auth.POST("/signup", h.Auth.SignUp)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", requireAuth, h.Auth.Logout)

	users := r.Group("/users", requireAuth, requireAccount)
	users.GET("/currentUser", h.User.GetCurrentUser)
	users.DELETE("/currentUser", h.User.DeleteCurrentUser)

	api := r.Group("/api", requireAuth, requireAccount)

	workout := api.Group("/workout")
	workout.GET("/all", h.Workout.GetWorkouts)
	workout.GET("/active", h.Workout.GetActiveWorkouts)
	workout.GET("/generateReport", h.Workout.GenerateReport)
	workout.POST("/create", h.Workout.CreateWorkout)
	workout.PUT("/update", h.Workout.UpdateWorkout)
	workout.DELETE("/delete/:id", h.Workout.DeleteWorkout)

	exercise := api.Group("/exercise")
	exercise.POST("/create", h.Exercise.CreateExercise)
	exercise.GET("/all", h.Exercise.ListExercises)
	exercise.GET("/:id", h.Exercise.GetExercise)

	return r
}
