// Package main provides the CLI entrypoint for the lead enrichment service.
// It wires subcommands (serve, migrate, jwt, enrich), loads configuration, and
// initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flowtrack/internal/config"
	"flowtrack/internal/enrich"
	"flowtrack/internal/locator"
	"flowtrack/internal/netintel"
	"flowtrack/internal/resolver"
	"flowtrack/internal/verifier"
	"flowtrack/internal/webprofiler"
	"flowtrack/pkg/dnsx/netresolver"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/storage/postgres"
	"flowtrack/pkg/webclient/httpfetch"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// pipelineDeps constructs the enrichment pipeline components from the
// configured network timeouts. The search client is shared between the domain
// resolver's fallback lookup and the person locator.
func pipelineDeps(cfg *config.Config) enrich.Deps {
	dns := netresolver.New(cfg.Enrichment.DNSTimeout)
	probe := httpfetch.New(httpfetch.Options{Timeout: cfg.Enrichment.ProbeTimeout})
	search := httpfetch.New(httpfetch.Options{Timeout: cfg.Enrichment.SearchTimeout})
	web := httpfetch.New(httpfetch.Options{Timeout: cfg.Enrichment.HTTPTimeout})

	return enrich.Deps{
		Resolver:  resolver.New(dns, probe, search),
		Collector: netintel.NewCollector(dns),
		Verifier: verifier.New(&net.Dialer{}, verifier.Options{
			Port:       cfg.Enrichment.SMTPPort,
			Timeout:    cfg.Enrichment.SMTPTimeout,
			HELODomain: cfg.Enrichment.HELODomain,
			MailFrom:   cfg.Enrichment.MailFrom,
		}),
		Profiler: webprofiler.New(web),
		Locator:  locator.New(search),
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "flowtrack",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		enrichCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
