package main

import (
	"context"
	"flag"
	"time"

	"trivia-backend/internal/cache"
	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	seedFile := flag.String("file", cfg.SeedFile, "YAML seed document (default: built-in question set)")
	flag.Parse()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	data, err := database.LoadSeed(*seedFile)
	if err != nil {
		log.Fatal("load seed", zap.Error(err))
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("database migrate", zap.Error(err))
	}

	res, err := database.Seed(ctx, db, data)
	if err != nil {
		log.Fatal("seed database", zap.Error(err))
	}
	log.Info("database seeded",
		zap.String("file", *seedFile),
		zap.Int("categories", res.Categories),
		zap.Int("questions", res.Questions),
	)

	if res.Categories > 0 && cfg.CacheEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := cache.NewCategoryCache(client, cfg.CategoryCacheTTL, log).Invalidate(ctx); err != nil {
			log.Warn("category cache invalidation failed", zap.Error(err))
		}
	}
}
