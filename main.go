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

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"streamhub/infrastructure/cache"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/persistence"
	"streamhub/infrastructure/storage"
	"streamhub/infrastructure/token"
	httpHandler "streamhub/interfaces/http"
	"streamhub/server"
	"streamhub/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error ensuring indexes")
		os.Exit(1)
	}

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if redisClient != nil {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}
	statsCache := cache.NewStatsCache(redisClient, 5*time.Minute)

	assetStorage, err := storage.NewS3Storage(ctx, configuration.C.ObjectStore)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot initialize object storage")
		os.Exit(1)
	}

	tokens := token.NewManager(
		app.AccessSecretKey,
		app.RefreshSecretKey,
		app.AccessTokenTTL,
		app.RefreshTokenTTL,
	)

	userRepository := persistence.NewUserRepository(db)
	sessionRepository := persistence.NewSessionRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	viewRepository := persistence.NewViewRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, sessionRepository, viewRepository, assetStorage, tokens)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, commentRepository, likeRepository, userRepository, viewRepository, assetStorage, statsCache)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, likeRepository, viewRepository)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, likeRepository, viewRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, viewRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, viewRepository, statsCache)
	dashboardUsecase := usecase.NewDashboardUsecase(viewRepository, statsCache)

	userHandler := httpHandler.NewUserHandler(userUsecase, app)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase, app)
	tweetHandler := httpHandler.NewTweetHandler(tweetUsecase)
	commentHandler := httpHandler.NewCommentHandler(commentUsecase)
	likeHandler := httpHandler.NewLikeHandler(likeUsecase)
	subscriptionHandler := httpHandler.NewSubscriptionHandler(subscriptionUsecase)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUsecase)
	healthHandler := httpHandler.NewHealthHandler()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.InitiateRouter(
		userHandler,
		videoHandler,
		tweetHandler,
		commentHandler,
		likeHandler,
		subscriptionHandler,
		dashboardHandler,
		healthHandler,
		tokens,
		userRepository,
		configuration.C.Cors.AllowOrigins,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error disconnecting MongoDB")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
