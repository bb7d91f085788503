package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/internal/adapters/cache"
	"github.com/clinicore/doctor-chatbot/internal/adapters/database"
	"github.com/clinicore/doctor-chatbot/internal/adapters/providers/nlp"
	"github.com/clinicore/doctor-chatbot/internal/api/handlers"
	"github.com/clinicore/doctor-chatbot/internal/api/routes"
	"github.com/clinicore/doctor-chatbot/internal/application/services"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/huggingface"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/openai"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/redis"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/observability"
	"github.com/clinicore/doctor-chatbot/pkg/config"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("doctor-chatbot", os.Getenv("APP_ENV"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry, continuing without it")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Store clients are opened lazily, one per execution context
	storeRegistry := postgres.NewRegistry(&cfg.Database)
	defer func() {
		if err := storeRegistry.CloseAll(); err != nil {
			log.Error().Err(err).Msg("error closing store clients")
		}
	}()

	// Redis is optional; the pipeline runs uncached without it
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, classification results will not be cached")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("redis client initialized")
	}

	scorer, err := huggingface.NewClient(&cfg.HuggingFace)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize classification oracle client")
	}

	generator, err := openai.NewClient(&cfg.OpenAI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize answer generator client")
	}

	intentRegistry := intents.MustNewRegistry(intents.DefaultSchema())

	extraction := services.NewExtractionService(nlp.NewProseRecognizer())
	classification := services.NewClassificationService(scorer, intentRegistry, cacheProvider, cfg.NLP.ConfidenceThreshold, metrics)
	dispatch := services.NewDispatchService()
	retrieval := services.NewRetrievalService(storeRegistry, func(client *postgres.Client) *services.RepositorySet {
		return &services.RepositorySet{
			Patients:     database.NewPatientAdapter(client),
			Appointments: database.NewAppointmentAdapter(client),
			Staff:        database.NewStaffAdapter(client),
			Clinical:     database.NewClinicalAdapter(client),
		}
	}, dispatch.Today, metrics)

	pipeline := services.NewPipelineService(
		extraction,
		classification,
		dispatch,
		retrieval,
		services.NewConversationMemory(),
		generator,
	)

	router := routes.NewRouter(handlers.NewChatHandler(pipeline), metrics)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
