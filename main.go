// File: roomfinder/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomfinder/config"
	"roomfinder/database"
	scheduleRepo "roomfinder/database/repository/schedule"
	"roomfinder/handlers"
	"roomfinder/middleware"
	"roomfinder/routes"
	"roomfinder/services/roomfinder"
	"roomfinder/services/schedule"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ordering, err := schedule.ParseTimeOrdering(config.AppConfig.TimeOrdering)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if ordering == schedule.OrderingLexical {
		logger.Warn("main: lexical time ordering enabled; times are compared as display strings and AM/PM boundaries sort incorrectly")
	}

	locatorCfg, err := config.LoadLocatorConfig(config.AppConfig.LocatorFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load locator table: %v", err)
	}

	// data source.
	var repo scheduleRepo.ScheduleRepository
	var mongoClient *mongo.Client
	if config.UsesMongo() {
		database.InitDB()
		mongoClient = database.MongoClient
		mongoRepo := scheduleRepo.NewMongoScheduleRepo(database.Database())
		if err := mongoRepo.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.Error(err))
		}
		repo = mongoRepo
	} else {
		repo = scheduleRepo.NewCSVScheduleRepo(config.AppConfig.TimetableFile, config.AppConfig.RoomsFile)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := roomfinder.LoadCatalog(loadCtx, repo, locatorCfg, ordering, logger)
	cancelLoad()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize room catalog: %v", err)
	}

	// services.
	cacheClient := utils.GetCacheClient()
	roomService := roomfinder.NewDefaultRoomFinderService(catalog.Filter, catalog.Locator, cacheClient, logger)
	roomService.CacheTTL = utils.CacheTTL()
	roomService.SearchTimeout = time.Duration(config.AppConfig.SearchTimeoutMS) * time.Millisecond

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, cacheClient, mongoClient)

	roomHandler := handlers.NewRoomHandler(roomService)
	handlerBundle := &handlers.HandlerBundle{
		ListRoomsHandler:      roomHandler.ListRoomsHandler,
		AvailableRoomsHandler: roomHandler.AvailableRoomsHandler,
		QueryOptionsHandler:   roomHandler.QueryOptionsHandler,
		FindPathHandler:       roomHandler.FindPathHandler,
		MapHandler:            roomHandler.MapHandler,
		HealthHandler:         handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

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
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
