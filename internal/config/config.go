package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment
type Config struct {
	MongoURI        string
	DBName          string
	RedisAddr       string // empty disables Redis
	HTTPPort        string
	LogMode         string
	RabbitURI       string // empty disables event publishing
	RabbitExchange  string
	SessionLockTTL  time.Duration
	SessionLockWait time.Duration
	SeedOnStartup   bool
	ShutdownTimeout time.Duration
	HistoryLimit    int64
}

// Load reads an optional .env file and then the environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "finbuddy"),
		RedisAddr:       redisAddr(os.Getenv("REDIS_URI")),
		HTTPPort:        getEnv("PORT", "8001"),
		LogMode:         getEnv("LOG_MODE", "development"),
		RabbitURI:       os.Getenv("RABBITMQ_URI"),
		RabbitExchange:  getEnv("RABBITMQ_EXCHANGE", "finbuddy.events"),
		SessionLockTTL:  getDurationMS("SESSION_LOCK_TTL_MS", 10*time.Second),
		SessionLockWait: getDurationMS("SESSION_LOCK_WAIT_MS", 3*time.Second),
		SeedOnStartup:   getBool("SEED_ON_STARTUP", true),
		ShutdownTimeout: 30 * time.Second,
		HistoryLimit:    100,
	}
}

// redisAddr strips a redis:// prefix, as go-redis Options.Addr wants host:port
func redisAddr(uri string) string {
	return strings.TrimPrefix(strings.TrimSpace(uri), "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func getDurationMS(key string, defaultVal time.Duration) time.Duration {
	ms, err := strconv.Atoi(os.Getenv(key))
	if err != nil || ms <= 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}
