package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"carmarket/internal/app"
	"carmarket/internal/config"
	"carmarket/internal/intake"
	"carmarket/internal/ratelimit"
	"carmarket/internal/session"
	"carmarket/internal/storage"
	"carmarket/internal/store"
	"carmarket/internal/telegram"
	"carmarket/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		util.InitLogger("info").Error("config load failed", "err", err)
		os.Exit(1)
	}
	log := util.InitLogger(cfg.LogLevel)

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Error("database init failed", "err", err)
		os.Exit(1)
	}

	var photos storage.PhotoStore
	if cfg.MinioEndpoint != "" {
		photos, err = storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Error("minio init failed", "err", err)
			os.Exit(1)
		}
		log.Info("photo storage ready", "backend", "minio", "bucket", cfg.MinioBucket)
	} else {
		photos, err = storage.NewDirStore(cfg.PhotoDir)
		if err != nil {
			log.Error("photo dir init failed", "err", err)
			os.Exit(1)
		}
		log.Info("photo storage ready", "backend", "dir", "path", cfg.PhotoDir)
	}

	var redisClient *redis.Client
	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, time.Duration(cfg.SessionTTLSeconds)*time.Second)
		log.Info("sessions backed by redis", "addr", cfg.RedisAddr)
	} else {
		log.Warn("redis not configured, sessions are in-memory and lost on restart")
	}

	var limiter *ratelimit.FixedWindowLimiter
	if cfg.IntakeStartsPerMinute > 0 {
		limiter, err = ratelimit.New(redisClient, "carmarket:intake_starts", cfg.IntakeStartsPerMinute, time.Minute)
		if err != nil {
			log.Error("rate limiter init failed", "err", err)
			os.Exit(1)
		}
	}

	flow := intake.New(sessions, st, photos, intake.Config{ExtendedFields: cfg.ExtendedFields}, log)
	application := app.New(st, flow, photos, limiter, app.Config{
		BrowseLimit: cfg.BrowseLimit,
		OwnedLimit:  cfg.OwnedLimit,
	}, log)

	bot, err := telegram.New(cfg.BotToken, application, photos, log)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "err", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
