package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/config"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/metrics"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/server"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/source"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/store"
)

const shutdownTimeout = 10 * time.Second

var (
	ServeCmd = &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		RunE:  serveCmdFunc(),
	}
)

func init() {
	flags := ServeCmd.Flags()
	flags.Int("port", 3000, "listening port")
	flags.String("source-mode", config.ModeScrape, "listing source: scrape or mock")
	flags.String("db-dsn", "carfinder.db", "saved search database")
	flags.String("log-level", "info", "log level")

	_ = viper.BindPFlag("port", flags.Lookup("port"))
	_ = viper.BindPFlag("source.mode", flags.Lookup("source-mode"))
	_ = viper.BindPFlag("db.dsn", flags.Lookup("db-dsn"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func serveCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := cfg.Log.NewLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		saved, err := store.Open(cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("open saved searches: %w", err)
		}
		defer saved.Close()

		m, err := metrics.New(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}

		serve := server.NewHTTPServer(cfg.Addr(), server.Deps{
			Logger:   logger,
			Searcher: newRegistry(cfg.Source, logger),
			Saved:    saved,
			Metrics:  m,
			Gatherer: prometheus.DefaultGatherer,
		})

		signalCh := make(chan os.Signal, 1)
		errCh := make(chan error, 1)

		go func() {
			logger.Info("started serve cmd",
				zap.String("addr", serve.Addr),
				zap.String("source_mode", cfg.Source.Mode),
			)
			if err := serve.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signalCh)

		select {
		case sig := <-signalCh:
			logger.Info("shutting down the server", zap.String("signal", sig.String()))
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return serve.Shutdown(ctx)
	}
}

// newRegistry wires the listing source of every market. Dutch searches
// cover marktplaats.nl and mobile.de, German searches mobile.de; mock mode
// serves offline listings everywhere.
func newRegistry(cfg config.SourceConfig, logger *zap.Logger) source.Registry {
	if cfg.Mode == config.ModeMock {
		registry := source.Registry{}
		for _, m := range dal.Markets() {
			registry[m] = source.Mock{Market: m}
		}
		return registry
	}

	opts := func(baseURL, name string) []source.Option {
		return []source.Option{
			source.WithBaseURL(baseURL),
			source.WithTimeout(cfg.Timeout),
			source.WithRateLimit(cfg.Rate, cfg.Burst),
			source.WithLimit(cfg.Limit),
			source.WithLogger(logger.Named(name)),
		}
	}
	mobileDe := source.NewMobileDe(opts(cfg.MobileDeURL, "mobilede")...)

	return source.Registry{
		dal.MarketNL: source.Multi{
			source.NewMarktplaats(opts(cfg.MarktplaatsURL, "marktplaats")...),
			mobileDe,
		},
		dal.MarketDE: mobileDe,
	}
}
