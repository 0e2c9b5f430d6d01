// Package main is the entry point for the gateway configuration
// bootstrap.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denizatay/fragway/internal/builtin"
	"github.com/denizatay/fragway/internal/config"
	"github.com/denizatay/fragway/internal/configurator"
	"github.com/denizatay/fragway/internal/observability"
	"github.com/denizatay/fragway/internal/registry"
)

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// cliFlags holds command line flags.
type cliFlags struct {
	configPath    string
	logLevel      string
	logFormat     string
	checkOnly     bool
	metricsListen string
	showVersion   bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		printVersion()
		return
	}

	logger := initLogger(flags)
	defer func() { _ = logger.Sync() }()

	doc := loadDocument(flags.configPath, logger)

	if flags.checkOnly {
		if err := config.ValidateGateway(doc); err != nil {
			logger.Fatal("invalid gateway configuration", observability.Error(err))
		}
		logger.Info("gateway configuration is valid",
			observability.String("config", flags.configPath),
		)
		return
	}

	metrics := observability.NewMetrics("fragway")
	cfg := configureGateway(doc, metrics, logger)

	logger.Info("gateway configuration materialized",
		observability.String("name", cfg.Gateway.Name),
		observability.Int("port", cfg.Gateway.Port),
		observability.Int("fragments", len(cfg.Gateway.Fragments)),
		observability.Int("apis", len(cfg.Gateway.API)),
		observability.String("revision", cfg.Revision),
	)

	if flags.metricsListen != "" {
		serveMetrics(flags.metricsListen, metrics, logger)
	}
}

// parseFlags parses command line flags.
func parseFlags() cliFlags {
	configPath := flag.String("config", getEnvOrDefault("GATEWAY_CONFIG_PATH", "configs/gateway.yaml"),
		"Path to configuration file")
	logLevel := flag.String("log-level", getEnvOrDefault("GATEWAY_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", getEnvOrDefault("GATEWAY_LOG_FORMAT", "json"),
		"Log format (json, console)")
	checkOnly := flag.Bool("check", false, "Validate the configuration and exit")
	metricsListen := flag.String("metrics-listen", "", "Address to serve metrics on (disabled when empty)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	return cliFlags{
		configPath:    *configPath,
		logLevel:      *logLevel,
		logFormat:     *logFormat,
		checkOnly:     *checkOnly,
		metricsListen: *metricsListen,
		showVersion:   *showVersion,
	}
}

// printVersion prints version information and exits.
func printVersion() {
	fmt.Printf("fragway gateway version %s\n", version)
	fmt.Printf("  Build time: %s\n", buildTime)
	fmt.Printf("  Git commit: %s\n", gitCommit)
}

// initLogger initializes the logger.
func initLogger(flags cliFlags) observability.Logger {
	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  flags.logLevel,
		Format: flags.logFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	observability.SetGlobalLogger(logger)
	return logger
}

// loadDocument loads the raw configuration document.
func loadDocument(configPath string, logger observability.Logger) config.Document {
	logger.Info("starting fragway gateway",
		observability.String("version", version),
		observability.String("config", configPath),
	)

	resolved, err := config.ResolveConfigPath(configPath)
	if err != nil {
		logger.Fatal("failed to resolve configuration path", observability.Error(err))
	}

	doc, err := config.LoadDocument(resolved)
	if err != nil {
		logger.Fatal("failed to load configuration", observability.Error(err))
	}

	return doc
}

// configureGateway populates the registry, runs the gateway
// configurator, and returns the active configuration.
func configureGateway(doc config.Document, metrics *observability.Metrics, logger observability.Logger) *configurator.Configuration {
	reg := registry.New()
	builtin.Register(reg, fragmentsFolder(doc))

	metrics.SetRegisteredDependencies(string(registry.KindHandler), reg.Len(registry.KindHandler))
	metrics.SetRegisteredDependencies(string(registry.KindMiddleware), reg.Len(registry.KindMiddleware))

	logger.Info("registry populated",
		observability.Strings("handlers", reg.Names(registry.KindHandler)),
		observability.Strings("middlewares", reg.Names(registry.KindMiddleware)),
	)

	c := configurator.NewGateway(reg,
		configurator.WithLogger(logger),
		configurator.WithMetrics(metrics),
	)
	if err := c.Configure(doc); err != nil {
		logger.Fatal("failed to configure gateway", observability.Error(err))
	}

	return c.Configuration()
}

// fragmentsFolder reads the fragments folder out of the raw document
// so built-ins can be registered before validation runs.
func fragmentsFolder(doc config.Document) string {
	if folder, ok := doc["fragmentsFolder"].(string); ok && folder != "" {
		return folder
	}
	return "fragments"
}

// serveMetrics exposes the metrics endpoint until the process is
// signalled to stop.
func serveMetrics(addr string, metrics *observability.Metrics, logger observability.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", observability.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("metrics server failed", observability.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	_ = server.Close()
}

// getEnvOrDefault returns the environment value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
