package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal/internal/config"
	"github.com/harentsoaR/doctors-portal/internal/handlers"
	"github.com/harentsoaR/doctors-portal/internal/middleware"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/routes"
	"github.com/harentsoaR/doctors-portal/internal/services"
)

func main() {
	log := logrus.StandardLogger()
	cfg := config.LoadConfig()
	setupLogger(log, cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"env":      cfg.AppEnv,
		"database": cfg.MongoDatabase,
		"port":     cfg.Port,
	}).Info("Configuration loaded")

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	db := client.Database(cfg.MongoDatabase)
	log.Info("Successfully connected to MongoDB!")

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		// an existing duplicate blocks the unique index; keep serving
		log.WithError(err).Error("Failed to ensure indexes")
	}

	// --- Repositories ---
	optionRepo := repository.NewAppointmentOptionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("Redis unreachable, option cache disabled")
			redisClient.Close()
			redisClient = nil
		} else {
			optionRepo = repository.NewCachedAppointmentOptionRepository(optionRepo, redisClient, cfg.OptionsCacheTTL, log)
			log.Info("Successfully connected to Redis")
		}
	}

	// --- Initialize Services ---
	var notificationSvc *services.NotificationService
	if cfg.SMTPEnabled() {
		notificationSvc = services.NewSMTPNotificationService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, log)
	} else {
		notificationSvc = services.NewNotificationService(nil, "", log)
	}
	gate := services.NewAccessGate(userRepo, cfg.AccessSecret, cfg.TokenTTL)
	availability := services.NewAvailabilityService(optionRepo, bookingRepo, notificationSvc, log)
	payments := services.NewPaymentService(services.NewStripeProcessor(cfg.StripeKey), paymentRepo, bookingRepo, log)

	h := handlers.NewHandler(gate, availability, payments, optionRepo, bookingRepo, userRepo, doctorRepo, log)

	// --- Gin Router ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	routes.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Infof("doctor server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Errorf("Failed to disconnect from MongoDB: %v", err)
	}
	log.Info("Server shutdown complete")
}

func setupLogger(log *logrus.Logger, level string) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
