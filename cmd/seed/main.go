package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finbuddy/internal/cache"
	"finbuddy/internal/config"
	"finbuddy/internal/logger"
	"finbuddy/internal/repository"
	"finbuddy/internal/service"
)

// seed creates indexes and writes the module and quiz catalog into empty
// collections. Running it twice is harmless.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.DBName)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("failed to create indexes", "error", err)
	}

	var locker cache.Locker = cache.NewLocalLocker(cfg.SessionLockWait)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to ping Redis", "error", err)
		}
		locker = cache.NewRedisLocker(rdb, cfg.SessionLockTTL, cfg.SessionLockWait, log)
	}

	moduleRepo := repository.NewModuleRepo(db)
	quizRepo := repository.NewQuizRepo(db)
	catalogSvc := service.NewCatalogService(moduleRepo, quizRepo, locker, log)

	if err := catalogSvc.EnsureSeeded(ctx); err != nil {
		log.Fatal("failed to seed catalog", "error", err)
	}

	modules, _ := moduleRepo.Count(ctx)
	quizzes, _ := quizRepo.Count(ctx)
	log.Info("catalog ready", "db", cfg.DBName, "modules", modules, "quizzes", quizzes)
}
