package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "gestao_atendimentos/docs" // registers the swagger spec
	"gestao_atendimentos/internal/adapter/http/handlers"
	"gestao_atendimentos/internal/adapter/persistence/repository"
	"gestao_atendimentos/internal/infrastructure/blob"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/infrastructure/logging"
	"gestao_atendimentos/internal/infrastructure/metrics"
	"gestao_atendimentos/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries the cross-cutting pieces of the router.
type RouterOptions struct {
	Gatherer    prometheus.Gatherer
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDatasetRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, opts RouterOptions) {
	log := logging.For("http", "adapter")
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestLogger(log))
	router.Use(requestMetrics(opts.Recorder))
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Disposition"},
			MaxAge:        12 * time.Hour,
		}))
	}
}

// Run opens the configured store, wires the use cases and serves HTTP until
// ctx is cancelled. A store that cannot be read at startup is an error;
// no fresh dataset is written over it.
func Run(ctx context.Context, cfg config.Config) error {
	log := logging.For("server", "infrastructure")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(registry)

	store, closeStore, err := repository.OpenDatasetStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()
	if _, err := store.Load(ctx); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	publisher, err := blob.NewPublisher(ctx, cfg.Export)
	if err != nil {
		return fmt.Errorf("configure export publisher: %w", err)
	}
	if publisher == nil {
		log.Info().Msg("export publishing not configured")
	}

	session := usecase.NewSession(store, rec)
	h := Handlers{
		Stage:      handlers.NewStageHandler(usecase.NewStageUseCase(session)),
		Consultant: handlers.NewConsultantHandler(usecase.NewConsultantUseCase(session)),
		Proposal:   handlers.NewProposalHandler(usecase.NewProposalUseCase(session)),
		Engagement: handlers.NewEngagementHandler(usecase.NewEngagementUseCase(session)),
		Export:     handlers.NewExportHandler(usecase.NewExportUseCase(session, publisher, cfg.Export.FileName)),
	}
	router := NewRouter(h, RouterOptions{Gatherer: registry, Recorder: rec, CORSOrigins: cfg.CORSOrigins})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", store.Driver()).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
