// Package observability provides structured logging and Prometheus
// metrics for the configuration pipeline.
//
// # Logging
//
//	logger, err := observability.NewLogger(observability.LogConfig{
//	    Level:  "info",
//	    Format: "json",
//	})
//
// # Metrics
//
//	metrics := observability.NewMetrics("fragway")
//	metrics.ObserveConfigure("Gateway", observability.OutcomeSuccess, 0.002)
package observability
