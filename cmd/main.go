package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/auth"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/config"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/database"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/handlers"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/logger"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/repository"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/routes"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, client, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UserCollection)
	donationRepo := repository.NewMongoDonationRepo(db, cfg.Mongo.DonationCollection)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.AccessTTL)

	authHandler := handlers.NewAuthHandler(tokens, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	donationHandler := handlers.NewDonationHandler(donationRepo, log)

	app := server.New(cfg, log)
	requireAuth := middleware.RequireAuth(tokens, userRepo, log)
	routes.Register(app, authHandler, userHandler, donationHandler, requireAuth)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		log.Info("server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = client.Disconnect(shutdownCtx)
	log.Info("shutdown completed")
}
