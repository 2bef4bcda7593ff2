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
	"github.com/rs/cors"
	"github.com/shenikar/geoprice/internal/config"
	"github.com/shenikar/geoprice/internal/events"
	"github.com/shenikar/geoprice/internal/generator"
	"github.com/shenikar/geoprice/internal/geocoding"
	v1 "github.com/shenikar/geoprice/internal/handler/http/v1"
	"github.com/shenikar/geoprice/internal/repository"
	"github.com/shenikar/geoprice/internal/service"
	"github.com/shenikar/geoprice/pkg/logger"
	redisclient "github.com/shenikar/geoprice/pkg/redis"
	"github.com/sirupsen/logrus"
)

// @title GeoPrice API
// @version 1.0
// @description Land areas with price metadata, served from static samples or geocoded boundaries.
// @host localhost:3001
// @BasePath /

// newAreaGenerator возвращает nil без ключа геокодера, тогда сервис работает на статических данных
func newAreaGenerator(cfg *config.Config, log *logrus.Logger) (service.AreaGenerator, error) {
	if !cfg.GeocodingEnabled() {
		log.Info("GOOGLE_MAPS_API_KEY is not set, serving static sample areas")
		return nil, nil
	}

	provider, err := geocoding.NewGoogleProvider(cfg.GoogleMapsAPIKey, cfg.GeocodeTimeout)
	if err != nil {
		return nil, fmt.Errorf("could not create geocoding provider: %w", err)
	}
	geocoder := geocoding.NewClient(provider, log)

	log.Info("Geocoding enabled, land areas will be generated from real coordinates")
	return generator.New(geocoder, log, generator.WithPause(cfg.GeocodePause)), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, err := newAreaGenerator(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize area generator: %v", err)
	}

	// Очередь событий об участках включается только при заданном REDIS_ADDR
	var publisher events.Publisher = events.NopPublisher{}
	var workerDone <-chan struct{}
	if cfg.EventsEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = events.NewRedisPublisher(redisClient)
		workerDone = events.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация сервисов
	landService := service.NewLandService(gen, repository.NewAreaStore(), publisher, log)

	// Инициализация хэндлеров и роутера
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := v1.NewHandler(landService, log)
	router := v1.NewRouter(handler, log)

	co := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", v1.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":   cfg.HTTPPort,
		"health": fmt.Sprintf("http://localhost:%s/health", cfg.HTTPPort),
		"api":    fmt.Sprintf("http://localhost:%s/api/land-areas", cfg.HTTPPort),
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("Area events worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
