package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wardsched/config"
	"wardsched/cron"
	"wardsched/database"
	bookingRepo "wardsched/database/repository/booking"
	roomRepo "wardsched/database/repository/room"
	"wardsched/handlers"
	"wardsched/middleware"
	"wardsched/routes"
	"wardsched/services/scheduler"
	"wardsched/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	schedulingService := &scheduler.DefaultSchedulingService{
		Rooms:    rooms,
		Bookings: bookings,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 5 * time.Minute,
	}

	bookingHandler := handlers.NewBookingHandler(schedulingService, logger)
	roomHandler := handlers.NewRoomHandler(rooms, logger)

	routes.RegisterRoutes(router, bookingHandler, roomHandler)

	// Background cache warmer.
	cron.InitOccupancyWorker(schedulingService)

	// Warm the occupancy cache for the coming week on startup.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	if allRooms, err := rooms.ListRooms(); err == nil {
		for _, room := range allRooms {
			if err := cron.EnqueueOccupancyWarm(queueClient, room.ID, config.AppConfig.WarmWindowDays); err != nil {
				logger.Sugar().Warnf("failed to enqueue occupancy warm for room %s: %v", room.ID, err)
			}
		}
	}

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
			logger.Sugar().Fatalf("listen: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
