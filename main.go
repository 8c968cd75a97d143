package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Martial4034/gigi-sales-leaderboard/config"
	"github.com/Martial4034/gigi-sales-leaderboard/database"
	leaderboardRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/leaderboard"
	mappingRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/mapping"
	salesRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/handlers"
	"github.com/Martial4034/gigi-sales-leaderboard/middleware"
	"github.com/Martial4034/gigi-sales-leaderboard/routes"
	"github.com/Martial4034/gigi-sales-leaderboard/services/leaderboard"
	"github.com/Martial4034/gigi-sales-leaderboard/services/permission"
	"github.com/Martial4034/gigi-sales-leaderboard/services/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vendorMapping := mappingRepo.NewFirestoreMappingRepo()
	saleRecords := salesRepo.NewFirestoreSalesRepo()
	boardRepo := leaderboardRepo.NewFirestoreLeaderboardRepo()

	// services.
	permissionResolver := &permission.DefaultResolver{
		Mapping: vendorMapping,
	}
	salesService := &sales.DefaultService{
		Repo:        saleRecords,
		Permissions: permissionResolver,
		Challenges:  config.ChallengeCollections(),
	}
	leaderboardService := &leaderboard.DefaultService{
		Repo:         boardRepo,
		BestRanks:    &leaderboard.RedisBestRankStore{Client: utils.GetCacheClient()},
		SlackTeamURL: config.AppConfig.SlackTeamURL,
	}

	// Warm the snapshot, then keep it live from the store subscription.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if err := leaderboardService.Refresh(watchCtx); err != nil {
		logger.Sugar().Warnf("main: initial leaderboard fetch failed: %v", err)
	}
	if err := leaderboardService.Start(watchCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to start leaderboard subscription: %v", err)
	}

	salesHandler := handlers.NewSalesHandler(salesService)
	vendorHandler := handlers.NewVendorHandler(vendorMapping, salesService, config.AppConfig.SlackTeamURL)
	boardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetLeaderboardHandler:    boardHandler.GetLeaderboardHandler,
		ExportLeaderboardHandler: boardHandler.ExportLeaderboardHandler,
		GetVendorHandler:         vendorHandler.GetVendorHandler,
		GetChallengesHandler:     vendorHandler.GetChallengesHandler,
		UpdateSaleHandler:        salesHandler.UpdateSaleHandler,
		DeleteSaleHandler:        salesHandler.DeleteSaleHandler,
	}

	// Register routes with the assembled handler bundle.
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

	stopWatch()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
