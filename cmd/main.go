package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"seungpyo.lee/PeakTrack/internal/config"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/handler"
	"seungpyo.lee/PeakTrack/internal/repository"
	"seungpyo.lee/PeakTrack/internal/service"
	"seungpyo.lee/PeakTrack/internal/validation"
	"seungpyo.lee/PeakTrack/internal/worker"
	"seungpyo.lee/PeakTrack/pkg/jwt"
	"seungpyo.lee/PeakTrack/pkg/logger"
	"seungpyo.lee/PeakTrack/pkg/middleware"
)

func main() {

	conf := config.LoadAppConfig()
	log := logger.New(conf.LogLevel)
	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(conf.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&domain.User{}, &domain.Exercise{}, &domain.Workout{}, &domain.BlacklistedToken{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	blacklistRepo := repository.NewBlacklistedTokenRepository(db)

	var denylist jwt.Denylist
	var sweeper *worker.TokenSweeper
	switch conf.DenylistBackend {
	case config.DenylistRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", conf.RedisDBURL, conf.RedisDBPort),
			Password: conf.RedisDBPassword,
			DB:       0, // use default DB
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		denylist = jwt.NewRedisDenylist(redisClient)
	case config.DenylistPostgres:
		denylist = blacklistRepo
		sweeper = worker.NewTokenSweeper(blacklistRepo, conf.TokenSweepInterval, log)
		go sweeper.Start(ctx)
	default:
		log.Fatalf("unknown DENYLIST_BACKEND %q", conf.DenylistBackend)
	}

	tokenManager := jwt.NewTokenManager(conf.JWTSecretKey, conf.AccessTokenDuration(), conf.JWTIssuer, denylist)
	policy := validation.NewPasswordPolicy(conf.Password)

	authSvc := service.NewAuthService(userRepo, policy, log)
	userSvc := service.NewUserService(userRepo, log)
	workoutSvc := service.NewWorkoutService(workoutRepo, exerciseRepo, log)
	exerciseSvc := service.NewExerciseService(exerciseRepo)

	limiter := middleware.NewRateLimiter(conf.AuthRateLimitRPS, conf.AuthRateLimitBurst)
	go limiter.StartCleanupWorker(ctx, 10*time.Minute)

	r := handler.NewRouter(handler.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, tokenManager, log),
		User:     handler.NewUserHandler(userSvc, tokenManager, log),
		Workout:  handler.NewWorkoutHandler(workoutSvc, conf.Location, log),
		Exercise: handler.NewExerciseHandler(exerciseSvc, log),
	}, tokenManager, limiter)

	server := &http.Server{
		Addr:         ":" + conf.ServerPort,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("peaktrack listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
	if sweeper != nil {
		sweeper.Wait()
	}
}
