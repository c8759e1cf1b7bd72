package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unistay/internal/config"
	"unistay/internal/handlers"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/repositories/mongodb"
	"unistay/internal/services"
	"unistay/pkg/cache"
	"unistay/pkg/database"
	"unistay/pkg/logger"
	"unistay/pkg/maps"
	"unistay/routes"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("failed to close MongoDB connection")
		}
	}()
	log.WithField("database", cfg.Database.Database).Info("Connected to MongoDB")

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	var cacheSvc interfaces.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, continuing without cache")
		} else {
			cacheSvc = redisCache
			defer redisCache.Close()
			log.Info("Connected to Redis")
		}
	}

	var mapsProvider maps.DistanceProvider
	if cfg.Maps.APIKey != "" {
		provider, err := maps.NewGoogleMapsProvider(cfg.Maps.APIKey)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize maps provider")
		}
		mapsProvider = provider
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set, ride quoting disabled")
	}

	// Repositories
	roomRepo := mongodb.NewRoomRepository(db.Database)
	driverRepo := mongodb.NewDriverRepository(db.Database)
	rideRepo := mongodb.NewRideRepository(db.Database)
	ratingRepo := mongodb.NewRatingRepository(db.Database, cacheSvc)
	driverRatingRepo := mongodb.NewDriverRatingRepository(db.Database, cacheSvc)
	commentRepo := mongodb.NewCommentRepository(db.Database)
	feedbackRepo := mongodb.NewFeedbackRepository(db.Database)
	savedRoomRepo := mongodb.NewSavedRoomRepository(db.Database)
	faqRepo := mongodb.NewFAQRepository(db.Database)

	// Services
	roomService := services.NewRoomService(roomRepo, ratingRepo, log)
	driverService := services.NewDriverService(driverRepo)
	rideService := services.NewRideService(rideRepo, driverRepo, mapsProvider, log)
	ratingService := services.NewRatingService(ratingRepo, roomRepo)
	driverRatingService := services.NewDriverRatingService(driverRatingRepo, driverRepo, log)
	commentService := services.NewCommentService(commentRepo, roomRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	savedRoomService := services.NewSavedRoomService(savedRoomRepo, roomRepo)
	faqService := services.NewFAQService(faqRepo)
	statsService := services.NewStatsService(roomRepo, driverRepo, rideRepo, ratingRepo, driverRatingRepo, feedbackRepo)

	router := routes.NewRouter(cfg, log, &routes.Handlers{
		Room:         handlers.NewRoomHandler(roomService),
		Rating:       handlers.NewRatingHandler(ratingService),
		Comment:      handlers.NewCommentHandler(commentService),
		SavedRoom:    handlers.NewSavedRoomHandler(savedRoomService),
		Driver:       handlers.NewDriverHandler(driverService),
		DriverRating: handlers.NewDriverRatingHandler(driverRatingService),
		Ride:         handlers.NewRideHandler(rideService),
		Feedback:     handlers.NewFeedbackHandler(feedbackService),
		FAQ:          handlers.NewFAQHandler(faqService),
		Stats:        handlers.NewStatsHandler(statsService),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("Server stopped")
}
