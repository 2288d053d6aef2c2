package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	metadataController "github.com/lloydmeta/raftmeta/internal/api/controllers/metadata"
	"github.com/lloydmeta/raftmeta/internal/config"
	diskMetadata "github.com/lloydmeta/raftmeta/internal/infra/disk/metadata"
	"github.com/lloydmeta/raftmeta/internal/infra/fs"
	"github.com/lloydmeta/raftmeta/internal/infra/server/routing"
)

// Components holds the wired-together pieces of the admin server.
type Components struct {
	appConfig *config.App
	ginEngine *gin.Engine
}

// NewComponents builds the metadata service for the configured data
// directory and wires the routing on top of it. Loading once up front means
// a corrupt or unreadable directory fails the process at startup instead of
// on first request.
func NewComponents(appConfig *config.App) (*Components, error) {
	service := diskMetadata.NewService(fs.Dir(appConfig.DataDir))

	record, err := service.Load()
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("data_dir", appConfig.DataDir).
		Uint64("version", uint64(record.Version)).
		Uint64("term", uint64(record.Term)).
		Uint64("voted_for", uint64(record.VotedFor)).
		Msg("Loaded replica metadata")

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	ginEngine := gin.New()
	ginEngine.Use(ginlogger.SetLogger(), gin.Recovery(), gzip.Gzip(gzip.DefaultCompression))
	ginEngine.NoRoute(routing.NoRoute)
	ginEngine.NoMethod(routing.NoMethod)

	topLevelGroup := routing.NewTopLevelRoutesGroup(appConfig.Auth, ginEngine)
	metadataHandler := routing.MetadataRoutesHandler{
		Controller: metadataController.New(service),
	}
	metadataHandler.RegisterRoutes(topLevelGroup)

	return &Components{
		appConfig: appConfig,
		ginEngine: ginEngine,
	}, nil
}

// Run serves the admin API until SIGINT or SIGTERM, then shuts down
// gracefully within the configured timeout.
func (c *Components) Run() {
	srv := &http.Server{
		Addr:    c.appConfig.BindAddress,
		Handler: c.ginEngine,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start up")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), c.appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shut down")
	}
	log.Info().Msg("Server exited")
}
