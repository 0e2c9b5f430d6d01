package configurator

import (
	"github.com/denizatay/fragway/internal/config"
)

// StorefrontConfigurator validates storefront documents. Storefront
// documents carry no symbolic references, so its injection step only
// materializes the document.
type StorefrontConfigurator struct {
	base
}

// NewStorefront creates a storefront configurator.
func NewStorefront(opts ...Option) *StorefrontConfigurator {
	c := &StorefrontConfigurator{
		base: newBase(config.KindStorefront),
	}
	for _, opt := range opts {
		opt(&c.base)
	}
	c.base.stages = c
	return c
}

func (c *StorefrontConfigurator) validate(doc config.Document) error {
	return config.ValidateStorefront(doc)
}

func (c *StorefrontConfigurator) injectDependencies(doc config.Document) (*Configuration, error) {
	cfg, err := config.DecodeStorefront(doc)
	if err != nil {
		return nil, err
	}
	return &Configuration{Kind: config.KindStorefront, Storefront: cfg}, nil
}
