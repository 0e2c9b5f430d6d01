package configurator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/denizatay/fragway/internal/config"
	"github.com/denizatay/fragway/internal/registry"
)

// GatewayConfigurator validates gateway documents and resolves their
// handler and middleware references against the registry.
type GatewayConfigurator struct {
	base
	registry *registry.Registry
}

// NewGateway creates a gateway configurator backed by reg. The registry
// must be fully populated before the first Configure call.
func NewGateway(reg *registry.Registry, opts ...Option) *GatewayConfigurator {
	c := &GatewayConfigurator{
		base:     newBase(config.KindGateway),
		registry: reg,
	}
	for _, opt := range opts {
		opt(&c.base)
	}
	c.base.stages = c
	return c
}

func (c *GatewayConfigurator) validate(doc config.Document) error {
	return config.ValidateGateway(doc)
}

// injectDependencies materializes the validated document and rewrites
// every handler and middleware reference into the concrete dependency
// registered under it. Unlike validation, injection fails fast: the
// first unresolved reference aborts the call and nothing is stored.
func (c *GatewayConfigurator) injectDependencies(doc config.Document) (*Configuration, error) {
	cfg, err := config.DecodeGateway(doc)
	if err != nil {
		return nil, err
	}

	for i := range cfg.Fragments {
		if err := c.injectFragment(&cfg.Fragments[i], fmt.Sprintf("fragments[%d]", i)); err != nil {
			return nil, err
		}
	}
	for i := range cfg.API {
		if err := c.injectAPI(&cfg.API[i], fmt.Sprintf("api[%d]", i)); err != nil {
			return nil, err
		}
	}

	return &Configuration{Kind: config.KindGateway, Gateway: cfg}, nil
}

func (c *GatewayConfigurator) injectFragment(frag *config.Fragment, path string) error {
	middlewares, err := c.resolveMiddlewares(frag.Render.Middlewares, path+".render.middlewares")
	if err != nil {
		return err
	}
	frag.Render.Middlewares = middlewares

	for _, version := range sortedKeys(frag.Versions) {
		fv := frag.Versions[version]
		handler, err := c.resolveHandler(fv.Handler, fmt.Sprintf("%s.versions.%s.handler", path, version))
		if err != nil {
			return err
		}
		fv.Handler = handler
		frag.Versions[version] = fv
	}

	return nil
}

func (c *GatewayConfigurator) injectAPI(api *config.API, path string) error {
	for _, version := range sortedKeys(api.Versions) {
		av := api.Versions[version]
		versionPath := fmt.Sprintf("%s.versions.%s", path, version)

		handler, err := c.resolveHandler(av.Handler, versionPath+".handler")
		if err != nil {
			return err
		}
		av.Handler = handler

		for i := range av.Endpoints {
			endpointPath := fmt.Sprintf("%s.endpoints[%d].middlewares", versionPath, i)
			middlewares, err := c.resolveMiddlewares(av.Endpoints[i].Middlewares, endpointPath)
			if err != nil {
				return err
			}
			av.Endpoints[i].Middlewares = middlewares
		}

		api.Versions[version] = av
	}

	return nil
}

// resolveHandler resolves an optional handler reference. A nil
// reference stays nil.
func (c *GatewayConfigurator) resolveHandler(ref any, path string) (any, error) {
	if ref == nil {
		return nil, nil
	}

	name, ok := ref.(string)
	if !ok {
		return nil, fmt.Errorf("%s: handler reference must be a string, got %T", path, ref)
	}

	dep, err := c.registry.Get(name, registry.KindHandler)
	if err != nil {
		return nil, withPath(err, path)
	}
	return dep, nil
}

// resolveMiddlewares resolves a middleware reference list in place
// order. An absent list is treated as empty.
func (c *GatewayConfigurator) resolveMiddlewares(refs []any, path string) ([]any, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	resolved := make([]any, len(refs))
	for i, ref := range refs {
		name, ok := ref.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: middleware reference must be a string, got %T", path, i, ref)
		}

		dep, err := c.registry.Get(name, registry.KindMiddleware)
		if err != nil {
			return nil, withPath(err, fmt.Sprintf("%s[%d]", path, i))
		}
		resolved[i] = dep
	}

	return resolved, nil
}

// withPath attaches the document field path to a registry lookup
// failure.
func withPath(err error, path string) error {
	var nf *registry.NotFoundError
	if errors.As(err, &nf) {
		return &registry.NotFoundError{Kind: nf.Kind, Name: nf.Name, Path: path}
	}
	return err
}

// sortedKeys returns the map keys in sorted order so injection visits
// version maps deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
