package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-charts/config"
	_ "weather-charts/docs"
	v1 "weather-charts/internal/controllers/http/v1"
	"weather-charts/internal/repositories"
	"weather-charts/internal/services/weather"
	"weather-charts/pkg/httpserver"
	"weather-charts/pkg/observe"
)

// @title Weather Charts API
// @version 1.0.0
// @description Turns National Weather Service gridpoint forecasts into Chart.js line chart configurations.
// @termsOfService http://swagger.io/terms/

// @contact.name Weather Charts Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast chart operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	var (
		hook       *observe.SentryHook
		errorSinks []io.Writer
	)
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot init sentry:", err)
			os.Exit(1)
		}
		errorSinks = append(errorSinks, hook)
	}

	l, err := observe.New(observe.Options{
		AppName:    cnf.App.Name,
		AppEnv:     cnf.App.Env,
		Level:      cnf.Log.Level,
		Format:     cnf.Log.Format,
		Writers:    []io.Writer{os.Stdout},
		ErrorSinks: errorSinks,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init logger:", err)
		os.Exit(1)
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
	})

	repo := repositories.InitForecastRepository(cnf, l)

	service := weather.NewWeatherService(repo, l)

	v1.NewRouter(
		app,
		service,
		l,
		v1.RouterOptions{AppName: cnf.App.Name, Version: cnf.App.Version},
	)

	go func() {
		if err := app.Listen(cnf.Addr()); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
		"env":      cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Error(err, map[string]any{"stage": "shutdown"})
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case sig := <-sigCh:
		l.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
