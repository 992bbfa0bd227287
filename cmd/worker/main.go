package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/kiosk/config"
	"github.com/Domenick1991/kiosk/internal/cache"
	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/email"
	"github.com/Domenick1991/kiosk/internal/kafka"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/Domenick1991/kiosk/internal/repository"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/Domenick1991/kiosk/internal/worker"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logging.New("info").Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log.Level).With("component", "worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	destinations := repository.NewDestinationRepository(db)
	var catalogCache catalog.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Kiosk.CatalogTTL())
		defer redisCache.Close()
		catalogCache = redisCache
	}
	source := catalog.NewCachedSource(destinations, catalogCache)

	// Email bodies name destinations from the live catalog when it is
	// reachable.
	known := catalog.Seed()
	if list, err := source.List(ctx); err == nil && len(list) > 0 {
		known = list
	}
	sender := email.NewSender(known, cfg.HTTP.PublicOrigin, logger)
	processor := worker.NewProcessor(repository.NewInteractionRepository(db), sender, logger)

	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("no kafka brokers configured, interaction consumer disabled")
	} else {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.InteractionsTopic, logger)
		defer consumer.Close()

		go func() {
			if err := consumer.Consume(ctx, processor.Handle); err != nil && ctx.Err() == nil {
				logger.Error("consumer stopped", "error", err)
				stop()
			}
		}()
	}

	if cfg.Worker.CatalogRefreshMinutes > 0 {
		go worker.RefreshCatalog(ctx, source, time.Duration(cfg.Worker.CatalogRefreshMinutes)*time.Minute, logger)
	}

	<-ctx.Done()
	logger.Info("shutting down")
}
