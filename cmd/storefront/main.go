// Package main is the entry point for the storefront configuration
// bootstrap.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/denizatay/fragway/internal/config"
	"github.com/denizatay/fragway/internal/configurator"
	"github.com/denizatay/fragway/internal/observability"
)

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", getEnvOrDefault("STOREFRONT_CONFIG_PATH", "configs/storefront.yaml"),
		"Path to configuration file")
	logLevel := flag.String("log-level", getEnvOrDefault("STOREFRONT_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", getEnvOrDefault("STOREFRONT_LOG_FORMAT", "json"),
		"Log format (json, console)")
	checkOnly := flag.Bool("check", false, "Validate the configuration and exit")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fragway storefront version %s\n", version)
		fmt.Printf("  Build time: %s\n", buildTime)
		fmt.Printf("  Git commit: %s\n", gitCommit)
		return
	}

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	observability.SetGlobalLogger(logger)

	logger.Info("starting fragway storefront",
		observability.String("version", version),
		observability.String("config", *configPath),
	)

	resolved, err := config.ResolveConfigPath(*configPath)
	if err != nil {
		logger.Fatal("failed to resolve configuration path", observability.Error(err))
	}

	doc, err := config.LoadDocument(resolved)
	if err != nil {
		logger.Fatal("failed to load configuration", observability.Error(err))
	}

	if *checkOnly {
		if err := config.ValidateStorefront(doc); err != nil {
			logger.Fatal("invalid storefront configuration", observability.Error(err))
		}
		logger.Info("storefront configuration is valid",
			observability.String("config", *configPath),
		)
		return
	}

	c := configurator.NewStorefront(
		configurator.WithLogger(logger),
		configurator.WithMetrics(observability.NewMetrics("fragway")),
	)
	if err := c.Configure(doc); err != nil {
		logger.Fatal("failed to configure storefront", observability.Error(err))
	}

	cfg := c.Configuration()
	logger.Info("storefront configuration materialized",
		observability.Int("port", cfg.Storefront.Port),
		observability.Int("gateways", len(cfg.Storefront.Gateways)),
		observability.Int("pages", len(cfg.Storefront.Pages)),
		observability.String("revision", cfg.Revision),
	)
}

// getEnvOrDefault returns the environment value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
