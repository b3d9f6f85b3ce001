package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odontocarol/clinicapi"
	"odontocarol/config"
	"odontocarol/cron"
	"odontocarol/handlers"
	"odontocarol/routes"
	"odontocarol/services/notification"
	"odontocarol/services/schedule"
	"odontocarol/services/tasks"
	"odontocarol/services/wizard"
	"odontocarol/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	sessionClient := utils.GetSessionCacheClient()

	clinicClient := clinicapi.NewClient(
		config.AppConfig.ClinicAPIBaseURL,
		time.Duration(config.AppConfig.ClinicAPITimeoutMS)*time.Millisecond,
		logger,
	)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	wizardService := &wizard.DefaultBookingWizardService{
		Clinic:            clinicClient,
		Sessions:          wizard.NewRedisSessionStore(sessionClient, time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute),
		Clock:             schedule.SystemClock{},
		Reminders:         tasks.NewAsynqReminderScheduler(asynqClient),
		ReminderLeadHours: config.AppConfig.ReminderLeadHours,
	}

	notificationService := notification.NewDefaultNotificationService()
	cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor(sessionClient, config.AppConfig.ClinicAPIBaseURL)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	bookingHandler := handlers.NewBookingHandler(wizardService)
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
