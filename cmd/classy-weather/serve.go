package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"

	"classy-weather/configs"
	"classy-weather/docs"
	"classy-weather/internal/application/controller"
	"classy-weather/internal/application/middleware"
	"classy-weather/internal/application/schedule"
	"classy-weather/internal/domain/usecase/health"
	"classy-weather/internal/domain/usecase/search"
	"classy-weather/internal/infra/metrics"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"
	"classy-weather/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = resource.GetString("app.server.port")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides app.server.port")
	return cmd
}

func serve(ctx context.Context, port string) error {
	log.Info(msg.GetMessage("app.start"))

	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.Close()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	middleware.SetupRequestMetrics(e)
	api := e.Group(configs.Env.ContextPath)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(configs.Env.ApplicationName, app.locationCache)
	searchUseCase := search.NewSearchUseCase(app.lookupUseCase, searchOptions())
	defer searchUseCase.CloseAll()

	// Init Routes
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, app.lookupUseCase).InitWeatherRoutes()
	controller.NewSearchController(api, searchUseCase).InitSearchRoutes()

	docs.SwaggerInfo.BasePath = configs.Env.ContextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)
	api.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Init Schedule
	if app.redisClient != nil {
		warmup := schedule.NewCacheWarmupScheduler(
			app.lookupUseCase,
			resource.GetString("app.cache.warm.cron"),
			resource.GetStringSlice("app.cache.warm.locations"),
		)
		if err := warmup.InitCacheWarmupTasks(); err != nil {
			return err
		}
		defer warmup.Stop()
	}

	// Start Routes
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + port)
	}()
	log.Info(msg.GetMessage("app.started"))

	select {
	case err := <-serverErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info(msg.GetMessage("app.stop"))
	return nil
}
