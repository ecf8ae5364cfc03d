package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trip-orchestrator/internal/config"
	"trip-orchestrator/internal/db"
	apihttp "trip-orchestrator/internal/http"
	"trip-orchestrator/internal/provider"
	"trip-orchestrator/internal/repository"
	"trip-orchestrator/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	providerTimeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second

	var flights provider.FlightProvider = provider.NewTBOAirClient(
		cfg.TBOAirAuthURL,
		cfg.TBOAirSearchURL,
		cfg.TBOAirUsername,
		cfg.TBOAirPassword,
		cfg.MaxFlightResults,
		providerTimeout,
		logger,
	)
	var hotels provider.HotelProvider = provider.NewTBOHotelClient(
		cfg.TBOHotelSearchURL,
		cfg.TBOHotelUsername,
		cfg.TBOHotelPassword,
		cfg.TBOHotelCodes,
		cfg.MaxHotelResults,
		providerTimeout,
		logger,
	)

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, cache disabled", zap.Error(err))
		} else {
			cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
			flights = provider.NewCachedFlightProvider(flights, redisClient, cacheTTL, logger)
			hotels = provider.NewCachedHotelProvider(hotels, redisClient, cacheTTL, logger)
		}
		cancel()
	}

	// El fallback va por fuera del cache: solo se cachean resultados reales.
	flights = provider.NewFlightFallback(flights, logger)
	hotels = provider.NewHotelFallback(hotels, logger)

	var history repository.SearchHistoryRepository = repository.NewDisabledSearchHistory()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Warn("db connect failed, history disabled", zap.Error(err))
		} else {
			defer pool.Close()
			history = repository.NewPgSearchHistoryRepository(pool)
		}
	}

	generator := service.NewCandidateGenerator(cfg.MaxFlightResults, cfg.MaxHotelResults, logger)
	tripSvc := service.NewTripService(logger, flights, hotels, generator, history)

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, api runs unauthenticated")
	}

	tripHandler := apihttp.NewTripHandler(logger, tripSvc)
	authHandler := apihttp.NewAuthHandler(logger, jwtSvc, cfg.APIClientID, cfg.APIClientSecret)
	router := apihttp.NewRouter(logger, tripHandler, authHandler, jwtSvc, cfg.JWTSecret != "")

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
