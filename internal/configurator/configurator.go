package configurator

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/denizatay/fragway/internal/config"
	"github.com/denizatay/fragway/internal/observability"
)

// ErrNotImplemented is returned when the base configurator's abstract
// steps run without a concrete variant supplying them. Reaching it is a
// programming-contract violation, not a data problem.
var ErrNotImplemented = errors.New("configurator: validate and injectDependencies require a concrete configurator variant")

// Configurator is the single entry point contract shared by the gateway
// and storefront variants.
type Configurator interface {
	// Configure validates the raw document, injects dependencies, and
	// stores the materialized result as the active configuration. On
	// any failure the previously active configuration is unchanged.
	Configure(doc config.Document) error

	// Configuration returns the active configuration, or nil if no
	// Configure call has succeeded yet.
	Configuration() *Configuration
}

// Configuration is a materialized, internally consistent runtime
// configuration. Exactly one of Gateway and Storefront is set,
// matching Kind. Downstream components read it but never mutate it.
type Configuration struct {
	Kind       config.DocumentKind
	Gateway    *config.GatewayConfig
	Storefront *config.StorefrontConfig

	// Revision uniquely identifies this stored configuration.
	Revision string

	// LoadedAt is the time the configuration was stored.
	LoadedAt time.Time
}

// Name returns the configured service name, or the empty string for
// documents without one.
func (c *Configuration) Name() string {
	if c.Gateway != nil {
		return c.Gateway.Name
	}
	return ""
}

// stages are the two abstract obligations every variant must supply.
// validate checks the raw document against the variant's schema;
// injectDependencies materializes it and resolves its symbolic
// references.
type stages interface {
	validate(doc config.Document) error
	injectDependencies(doc config.Document) (*Configuration, error)
}

// unimplementedStages is the base behavior: every step fails with
// ErrNotImplemented, so the base is never usable as a working
// configurator on its own.
type unimplementedStages struct{}

func (unimplementedStages) validate(config.Document) error {
	return ErrNotImplemented
}

func (unimplementedStages) injectDependencies(config.Document) (*Configuration, error) {
	return nil, ErrNotImplemented
}

// base carries the fixed validate-inject-store sequence and the active
// configuration. Variants embed it and supply their stages.
type base struct {
	kind    config.DocumentKind
	stages  stages
	active  *Configuration
	logger  observability.Logger
	metrics *observability.Metrics
}

func newBase(kind config.DocumentKind) base {
	return base{
		kind:   kind,
		stages: unimplementedStages{},
		logger: observability.NopLogger(),
	}
}

// Configure runs the fixed sequence: validate, inject, store. Each
// successful call atomically replaces the active configuration with a
// freshly materialized copy of the processed document.
func (b *base) Configure(doc config.Document) error {
	start := time.Now()

	cfg, err := b.configure(doc)
	if err != nil {
		if b.metrics != nil {
			b.metrics.ObserveConfigure(string(b.kind), observability.OutcomeFailure, 0)
		}
		return err
	}

	cfg.Revision = uuid.NewString()
	cfg.LoadedAt = time.Now()
	b.active = cfg

	if b.metrics != nil {
		b.metrics.ObserveConfigure(string(cfg.Kind), observability.OutcomeSuccess, time.Since(start).Seconds())
		b.metrics.SetActiveConfiguration(string(cfg.Kind), cfg.Name(), cfg.Revision)
	}
	b.logger.Info("configuration stored",
		observability.String("kind", string(cfg.Kind)),
		observability.String("name", cfg.Name()),
		observability.String("revision", cfg.Revision),
	)

	return nil
}

func (b *base) configure(doc config.Document) (*Configuration, error) {
	if err := b.stages.validate(doc); err != nil {
		return nil, err
	}
	return b.stages.injectDependencies(doc)
}

// Configuration returns the active configuration, or nil before the
// first successful Configure call.
func (b *base) Configuration() *Configuration {
	return b.active
}

// Option configures a configurator variant.
type Option func(*base)

// WithLogger sets the logger.
func WithLogger(logger observability.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(b *base) {
		b.metrics = metrics
	}
}
