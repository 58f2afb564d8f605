package main

import (
	"context"
	"os/signal"
	"syscall"

	"trivia-backend/internal/cache"
	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/server"
	"trivia-backend/internal/services"

	_ "trivia-backend/docs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Categories, paginated questions, search and quiz play for the trivia game
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("database migrate", zap.Error(err))
	}
	log.Info("database migrated")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoSeed {
		data, err := database.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatal("load seed", zap.Error(err))
		}
		res, err := database.Seed(ctx, db, data)
		if err != nil {
			log.Fatal("seed database", zap.Error(err))
		}
		log.Info("database seeded", zap.Int("categories", res.Categories), zap.Int("questions", res.Questions))
	}

	var categoryCache services.CategoryCache
	if cfg.CacheEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		categoryCache = cache.NewCategoryCache(client, cfg.CategoryCacheTTL, log)
		log.Info("category cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CategoryCacheTTL))
	} else {
		log.Info("REDIS_ADDR not set, category cache disabled")
	}

	srv := server.New(cfg, db, categoryCache, log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
	log.Info("server stopped")
}
