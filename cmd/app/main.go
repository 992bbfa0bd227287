package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/kiosk/config"
	healthapi "github.com/Domenick1991/kiosk/internal/api/health_service_api"
	"github.com/Domenick1991/kiosk/internal/bootstrap"
	"github.com/Domenick1991/kiosk/internal/cache"
	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/kafka"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/Domenick1991/kiosk/internal/repository"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/Domenick1991/kiosk/internal/service/interaction"
	"github.com/Domenick1991/kiosk/internal/service/kiosk"
	"github.com/Domenick1991/kiosk/internal/service/profile"
	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var errRedisNotConfigured = errors.New("redis storage selected but redis.addr is empty")

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
	logger := logging.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg.Redis, cfg.Kiosk.CatalogTTL())
		defer redisCache.Close()
	}

	stores, closeStores, err := storeFactory(cfg.Kiosk, redisCache)
	if err != nil {
		logger.Error("open kiosk storage", "storage", cfg.Kiosk.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStores()

	var catalogCache catalog.Cache
	if redisCache != nil {
		catalogCache = redisCache
	}
	destinations := catalog.NewCachedSource(repository.NewDestinationRepository(db), catalogCache)

	var sink interaction.Sink = interaction.NewLogSink(logger)
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer producer.Close()
		sink = kafka.NewInteractionSink(producer, cfg.Kafka.InteractionsTopic)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	flightService := flights.NewFlightService(flights.Flights())
	seed := catalog.Seed()

	registry := kiosk.NewRegistry(stores, kiosk.Deps{
		CatalogSource: destinations,
		Seed:          seed,
		ProfileSource: profile.NewHTTPSource(cfg.Profile.URL, &http.Client{Timeout: cfg.Kiosk.RemoteTimeout()}),
		Sink:          sink,
		Metrics:       interaction.NewMetrics(reg),
		Flights:       flightService,
		RemoteTimeout: cfg.Kiosk.RemoteTimeout(),
		Logger:        logger,
	})
	defer registry.Close()

	health := healthapi.NewServer(db)
	router := bootstrap.NewRouter(bootstrap.RouterDeps{
		Flights:      flightService,
		Catalog:      destinations,
		Seed:         seed,
		Kiosks:       registry,
		Health:       health,
		Gatherer:     reg,
		SwaggerDir:   cfg.HTTP.SwaggerDir,
		PublicOrigin: cfg.HTTP.PublicOrigin,
		Logger:       logger,
	})

	// The configured device is mounted up front so the kiosk screen finds it
	// ready on first load.
	if _, err := registry.Get(cfg.Kiosk.DeviceID).Mount(ctx, kiosk.InitialView{}); err != nil {
		logger.Warn("mount default kiosk", "device_id", cfg.Kiosk.DeviceID, "error", err)
	}

	if err := bootstrap.Run(ctx, cfg, router, health, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func storeFactory(cfg config.KioskConfig, redisCache *cache.RedisCache) (storage.Factory, func(), error) {
	switch cfg.Storage {
	case "redis":
		if redisCache == nil {
			return nil, nil, errRedisNotConfigured
		}
		return redisCache.Factory(), func() {}, nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "kiosk.db"
		}
		sqlDB, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return storage.SQLiteFactory(sqlDB), func() { sqlDB.Close() }, nil
	default:
		return storage.MemoryFactory(), func() {}, nil
	}
}
