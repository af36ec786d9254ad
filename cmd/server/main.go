package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/cache"
	"finbuddy/internal/catalog"
	"finbuddy/internal/config"
	"finbuddy/internal/event"
	"finbuddy/internal/llm"
	"finbuddy/internal/logger"
	"finbuddy/internal/repository"
	"finbuddy/internal/service"
	"finbuddy/internal/transport/rest"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", "error", err)
	}
	log.Info("connected to MongoDB", "db", cfg.DBName)

	db := mongoClient.Database(cfg.DBName)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("failed to create indexes", "error", err)
	}

	// Redis is optional; without it locks are process-local and there is no leaderboard
	var (
		locker      cache.Locker           = cache.NewLocalLocker(cfg.SessionLockWait)
		leaderboard cache.LeaderboardCache = cache.NoopLeaderboard{}
	)
	if rdb := connectRedis(ctx, cfg, log); rdb != nil {
		defer rdb.Close()
		locker = cache.NewRedisLocker(rdb, cfg.SessionLockTTL, cfg.SessionLockWait, log)
		leaderboard = cache.NewLeaderboardCache(rdb)
	}

	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	generator := newGenerator(ctx, log)

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(db)
	chatRepo := repository.NewChatRepo(db)
	moduleRepo := repository.NewModuleRepo(db)
	quizRepo := repository.NewQuizRepo(db)

	// Initialize services
	progressSvc := service.NewProgressService(profileRepo, locker, log)
	progressSvc.SetLeaderboard(leaderboard)
	progressSvc.SetPublisher(publisher)

	catalogSvc := service.NewCatalogService(moduleRepo, quizRepo, locker, log)

	chatSvc := service.NewChatService(progressSvc, chatRepo, generator, log)
	chatSvc.SetPublisher(publisher)
	chatSvc.SetHistoryLimit(cfg.HistoryLimit)

	moduleSvc := service.NewModuleService(moduleRepo, catalogSvc, progressSvc)

	quizSvc := service.NewQuizService(quizRepo, catalogSvc, progressSvc, log)
	quizSvc.SetPublisher(publisher)

	if cfg.SeedOnStartup {
		if err := catalogSvc.EnsureSeeded(ctx); err != nil {
			log.Fatal("failed to seed catalog", "error", err)
		}
	}

	router := rest.NewRouter(&rest.Container{
		ChatService:     chatSvc,
		ModuleService:   moduleSvc,
		QuizService:     quizSvc,
		ProgressService: progressSvc,
		Badges:          catalog.Badges,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "model", generator.ModelID())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe", "error", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}

func connectRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_URI not set, using in-process session locks and no leaderboard")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", "addr", cfg.RedisAddr, "error", err)
	}
	log.Info("connected to Redis", "addr", cfg.RedisAddr)
	return rdb
}

func newPublisher(cfg *config.Config, log *logger.Logger) event.Publisher {
	if cfg.RabbitURI == "" {
		return event.NoopPublisher{}
	}

	pub, err := event.NewAMQPPublisher(cfg.RabbitURI, cfg.RabbitExchange)
	if err != nil {
		log.Warn("RabbitMQ unavailable, events disabled", "error", err)
		return event.NoopPublisher{}
	}
	log.Info("publishing events", "exchange", cfg.RabbitExchange)
	return pub
}

func newGenerator(ctx context.Context, log *logger.Logger) llm.Generator {
	aiConfig := config.DefaultAIConfig()
	if !aiConfig.IsEnabled() {
		log.Warn("GEMINI_API_KEY not set, chat replies are offline")
		return llm.OfflineGenerator{}
	}

	gen, err := llm.NewGeminiGenerator(ctx, aiConfig.APIKey, aiConfig.Model)
	if err != nil {
		log.Fatal("failed to create Gemini client", "error", err)
	}
	return gen
}
