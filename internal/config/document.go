package config

// Document is a raw configuration document as decoded from YAML,
// before validation and materialization.
type Document map[string]any

// DocumentKind tags the two configuration document shapes.
type DocumentKind string

// Supported document kinds.
const (
	KindGateway    DocumentKind = "Gateway"
	KindStorefront DocumentKind = "Storefront"
)

// HTTP methods accepted by API endpoints.
const (
	MethodGet  = "get"
	MethodPost = "post"
)

// Resource types for assets and dependencies.
const (
	ResourceTypeCSS = "css"
	ResourceTypeJS  = "js"
)

// Resource inject types.
const (
	InjectTypeInline   = "inline"
	InjectTypeExternal = "external"
)

// Resource placement locations within the rendered page.
const (
	LocationHead         = "head"
	LocationBodyStart    = "body_start"
	LocationBodyEnd      = "body_end"
	LocationContentStart = "content_start"
	LocationContentEnd   = "content_end"
)

// JS execution modes for script assets.
const (
	ExecuteTypeSync  = "sync"
	ExecuteTypeAsync = "async"
	ExecuteTypeDefer = "defer"
)

// Transfer protocols negotiable via ALPN on TLS listeners.
const (
	ProtocolH2     = "h2"
	ProtocolSpdy31 = "spdy/3.1"
	ProtocolHTTP11 = "http/1.1"
)

// GatewayConfig is the materialized configuration of a gateway service.
type GatewayConfig struct {
	Kind            DocumentKind `yaml:"kind"`
	Name            string       `yaml:"name"`
	URL             string       `yaml:"url"`
	Port            int          `yaml:"port"`
	FragmentsFolder string       `yaml:"fragmentsFolder"`
	CORSDomains     []string     `yaml:"corsDomains,omitempty"`
	TLS             *TLSSettings `yaml:"tls,omitempty"`
	API             []API        `yaml:"api"`
	Fragments       []Fragment   `yaml:"fragments"`
}

// API is a versioned API surface exposed by a gateway.
type API struct {
	Name        string                `yaml:"name"`
	TestCookie  string                `yaml:"testCookie"`
	LiveVersion string                `yaml:"liveVersion"`
	Versions    map[string]APIVersion `yaml:"versions"`
}

// APIVersion is one version of an API.
//
// Handler holds the handler reference name until injection replaces it
// with the concrete dependency.
type APIVersion struct {
	Handler   any        `yaml:"handler,omitempty"`
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Endpoint is a single routable API operation.
//
// Middlewares holds reference names until injection replaces them with
// concrete dependencies.
type Endpoint struct {
	Path        string         `yaml:"path"`
	Method      string         `yaml:"method"`
	Controller  string         `yaml:"controller"`
	Middlewares []any          `yaml:"middlewares,omitempty"`
	Cache       *CacheSettings `yaml:"cache,omitempty"`
}

// CacheSettings controls response caching for an endpoint.
type CacheSettings struct {
	Duration Duration `yaml:"duration,omitempty"`
	PerUser  bool     `yaml:"perUser,omitempty"`
}

// Fragment is a reusable, versioned page component served by a gateway.
type Fragment struct {
	Name       string                     `yaml:"name"`
	TestCookie string                     `yaml:"testCookie"`
	Render     RenderOptions              `yaml:"render"`
	Version    string                     `yaml:"version"`
	Versions   map[string]FragmentVersion `yaml:"versions"`
}

// RenderOptions controls how a fragment is rendered and routed.
type RenderOptions struct {
	URL         StringOrList `yaml:"url"`
	Static      bool         `yaml:"static,omitempty"`
	SelfReplace bool         `yaml:"selfReplace,omitempty"`
	Placeholder bool         `yaml:"placeholder,omitempty"`
	Timeout     Duration     `yaml:"timeout,omitempty"`
	Middlewares []any        `yaml:"middlewares,omitempty"`
	RouteCache  Duration     `yaml:"routeCache,omitempty"`
}

// FragmentVersion is one version of a fragment.
type FragmentVersion struct {
	Assets       []Asset      `yaml:"assets"`
	Dependencies []Dependency `yaml:"dependencies"`
	Handler      any          `yaml:"handler,omitempty"`
}

// Asset is a static resource shipped with a fragment version.
type Asset struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	InjectType  string `yaml:"injectType"`
	FileName    string `yaml:"fileName"`
	Link        string `yaml:"link,omitempty"`
	Location    string `yaml:"location"`
	ExecuteType string `yaml:"executeType,omitempty"`
}

// Dependency is an external resource a fragment version relies on.
type Dependency struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Link       string `yaml:"link,omitempty"`
	Preview    string `yaml:"preview,omitempty"`
	InjectType string `yaml:"injectType,omitempty"`
}

// StorefrontConfig is the materialized configuration of a storefront
// service.
type StorefrontConfig struct {
	Kind         DocumentKind `yaml:"kind"`
	Port         int          `yaml:"port"`
	Gateways     []GatewayRef `yaml:"gateways"`
	Pages        []Page       `yaml:"pages"`
	PollInterval Duration     `yaml:"pollInterval,omitempty"`
	Dependencies []Dependency `yaml:"dependencies"`
	TLS          *TLSSettings `yaml:"tls,omitempty"`
}

// GatewayRef points a storefront at a gateway it aggregates.
type GatewayRef struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	AssetURL string `yaml:"assetUrl,omitempty"`
}

// Page maps an HTML template to one or more URL patterns.
type Page struct {
	HTML string       `yaml:"html"`
	URL  StringOrList `yaml:"url"`
}

// TLSSettings carries the key material and protocol set for a TLS
// listener.
type TLSSettings struct {
	Key        string   `yaml:"key"`
	Cert       string   `yaml:"cert"`
	Passphrase string   `yaml:"passphrase"`
	Protocols  []string `yaml:"protocols"`
}
