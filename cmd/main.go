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

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/application/services"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/adapters"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/gin_interface/controllers"
	"github.com/0xlimon/hyperbolic-story-creator/middleware"
	mockgenerator "github.com/0xlimon/hyperbolic-story-creator/mock"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

const keepaliveInterval = 15 * time.Second

type generators struct {
	script outbound.StoryScriptGeneratorPort
	image  outbound.ImageGeneratorPort
	audio  outbound.AudioGeneratorPort
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	logConfig, err := config.GetLogConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get log config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	providerConfig, err := config.GetProviderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get provider config")
	}

	storyConfig, err := config.GetStoryConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get story config")
	}

	credentialStoreConfig, err := config.GetCredentialStoreConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get credential store config")
	}

	authConfig, err := config.NewAuthorizerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get authorizer config")
	}

	zeroLogger := adapters.NewZerologWrapper(logConfig)

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(storyConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler), ants.WithNonblocking(true))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	credentialStore, closeStore, err := newCredentialStore(credentialStoreConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create credential store")
	}
	defer closeStore()

	gens, err := newGenerators(providerConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generators")
	}

	snapshotPublisher := adapters.NewSSESnapshotPublisher(zeroLogger)
	snapshotPublisher.StartKeepalive(keepaliveInterval)

	segmenter := services.NewSectionSegmenter(storyConfig.SectionWordThreshold, storyConfig.MaxSections)

	storyOrchestrator := services.NewStoryOrchestrator(zeroLogger, workerPool, segmenter,
		gens.script, gens.image, gens.audio, snapshotPublisher,
		services.SkipDelay{Base: storyConfig.SkipBaseDelay, PerChar: storyConfig.SkipDelayPerChar})

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if authConfig.Enabled() {
		authHandler, err := middleware.NewAuthHandler(authConfig, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL is not set, API authentication is disabled")
	}

	controllers.NewCatalogController(storyConfig).RegisterRoutes(router)
	controllers.NewCredentialController(zeroLogger, credentialStore).RegisterRoutes(router)
	controllers.NewStoryController(zeroLogger, storyOrchestrator, credentialStore, storyConfig,
		snapshotPublisher.Handler()).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    serverConfig.Addr(),
		Handler: router,
	}

	go func() {
		zeroLogger.InfoWithFields("Server listening", map[string]interface{}{
			"addr": srv.Addr,
			"mock": providerConfig.Mock,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server!")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zeroLogger.Info("Shutting down server")

	// Event streams never finish on their own, so they are closed before draining requests.
	snapshotPublisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zeroLogger.Error(err, "Server shutdown failed")
	}

	zeroLogger.Info("Server stopped")
}

func newCredentialStore(storeConfig *config.CredentialStoreConfig, logger outbound.LoggerPort) (outbound.CredentialStorePort, func(), error) {
	switch storeConfig.Backend {
	case config.SQLiteCredentialStore:
		store, err := adapters.NewSQLiteCredentialStore(context.Background(), logger, storeConfig)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error(err, "Failed to close credential store")
			}
		}, nil
	case config.DynamoCredentialStore:
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		return adapters.NewDynamoCredentialStore(logger, dynamodb.New(sess), storeConfig), func() {}, nil
	default:
		return adapters.NewMemoryCredentialStore(), func() {}, nil
	}
}

func newGenerators(providerConfig *config.ProviderConfig, logger outbound.LoggerPort) (generators, error) {
	if providerConfig.Mock {
		runner, err := mockgenerator.Init(providerConfig, logger)
		if err != nil {
			return generators{}, err
		}
		return generators{
			script: runner.ScriptGenerator(),
			image:  runner.ImageGenerator(),
			audio:  runner.AudioGenerator(),
		}, nil
	}

	contentFetcher := adapters.NewContentFetcher(logger, nil)
	return generators{
		script: adapters.NewStoryScriptGenerator(contentFetcher, providerConfig, logger),
		image:  adapters.NewImageGenerator(contentFetcher, providerConfig, logger),
		audio:  adapters.NewAudioGenerator(contentFetcher, providerConfig, logger),
	}, nil
}
