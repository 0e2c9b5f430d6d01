package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gatewayYAML = `
kind: Gateway
name: browsing
url: https://browsing.example.com
port: 4444
fragmentsFolder: ./fragments
corsDomains:
  - https://storefront.example.com
api:
  - name: product
    testCookie: product_api_version
    liveVersion: 1.0.0
    versions:
      1.0.0:
        handler: productApiHandler
        endpoints:
          - path: /items
            method: get
            controller: listItems
            middlewares:
              - requestId
            cache:
              duration: 1m
fragments:
  - name: header
    testCookie: header_version
    render:
      url: /
      placeholder: true
      timeout: 5s
    version: 1.0.0
    versions:
      1.0.0:
        assets:
          - name: header-styles
            type: css
            injectType: inline
            fileName: header.css
            location: head
        dependencies: []
        handler: headerHandler
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(writeConfigFile(t, gatewayYAML))
	require.NoError(t, err)

	assert.Equal(t, "Gateway", doc["kind"])
	assert.Equal(t, "browsing", doc["name"])
	assert.Equal(t, 4444, doc["port"])
	require.NoError(t, ValidateGateway(doc))
}

func TestLoadDocument_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDocument_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument(writeConfigFile(t, "kind: [unclosed"))
	assert.Error(t, err)
}

func TestLoadDocumentFromReader(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocumentFromReader(strings.NewReader(gatewayYAML))
	require.NoError(t, err)
	assert.Equal(t, "browsing", doc["name"])
}

func TestLoadDocument_EnvSubstitution(t *testing.T) {
	t.Setenv("FRAGWAY_TEST_NAME", "search")

	content := `
kind: Gateway
name: ${FRAGWAY_TEST_NAME}
url: ${FRAGWAY_TEST_URL:-https://fallback.example.com}
literal: $$HOME
`

	doc, err := LoadDocumentFromReader(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "search", doc["name"])
	assert.Equal(t, "https://fallback.example.com", doc["url"])
	assert.Equal(t, "$HOME", doc["literal"])
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("FRAGWAY_TEST_PORT", "8080")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "set variable", input: "port: ${FRAGWAY_TEST_PORT}", expected: "port: 8080"},
		{name: "unset with default", input: "url: ${FRAGWAY_TEST_UNSET:-http://localhost}", expected: "url: http://localhost"},
		{name: "unset without default", input: "url: ${FRAGWAY_TEST_UNSET}", expected: "url: "},
		{name: "escaped dollar", input: "price: $$5", expected: "price: $5"},
		{name: "no variables", input: "name: plain", expected: "name: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substituteEnvVars(tt.input))
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	t.Run("absolute existing", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, gatewayYAML)
		resolved, err := ResolveConfigPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, resolved)
	})

	t.Run("absolute missing", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("relative missing everywhere", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveConfigPath("definitely-not-a-config.yaml")
		assert.Error(t, err)
	})
}

func TestDecodeGateway(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocumentFromReader(strings.NewReader(gatewayYAML))
	require.NoError(t, err)
	require.NoError(t, ValidateGateway(doc))

	cfg, err := DecodeGateway(doc)
	require.NoError(t, err)

	assert.Equal(t, KindGateway, cfg.Kind)
	assert.Equal(t, "browsing", cfg.Name)
	assert.Equal(t, 4444, cfg.Port)
	assert.Equal(t, []string{"https://storefront.example.com"}, cfg.CORSDomains)

	require.Len(t, cfg.API, 1)
	api := cfg.API[0]
	assert.Equal(t, "product", api.Name)
	require.Contains(t, api.Versions, "1.0.0")
	assert.Equal(t, "productApiHandler", api.Versions["1.0.0"].Handler)

	endpoint := api.Versions["1.0.0"].Endpoints[0]
	assert.Equal(t, "/items", endpoint.Path)
	assert.Equal(t, MethodGet, endpoint.Method)
	assert.Equal(t, []any{"requestId"}, endpoint.Middlewares)
	require.NotNil(t, endpoint.Cache)
	assert.Equal(t, time.Minute, endpoint.Cache.Duration.Duration())

	require.Len(t, cfg.Fragments, 1)
	frag := cfg.Fragments[0]
	assert.Equal(t, StringOrList{"/"}, frag.Render.URL)
	assert.True(t, frag.Render.Placeholder)
	assert.Equal(t, 5*time.Second, frag.Render.Timeout.Duration())
	assert.Equal(t, "headerHandler", frag.Versions["1.0.0"].Handler)
	assert.Equal(t, "header.css", frag.Versions["1.0.0"].Assets[0].FileName)
}

func TestDecodeGateway_SharesNothingWithDocument(t *testing.T) {
	t.Parallel()

	doc := validGatewayDoc()
	cfg, err := DecodeGateway(doc)
	require.NoError(t, err)

	doc["name"] = "mutated"
	doc["fragments"].([]any)[0].(map[string]any)["name"] = "mutated"

	assert.Equal(t, "browsing", cfg.Name)
	assert.Equal(t, "header", cfg.Fragments[0].Name)
}

func TestDecodeStorefront(t *testing.T) {
	t.Parallel()

	doc := validStorefrontDoc()
	doc["pollInterval"] = "30s"
	doc["pages"].([]any)[0].(map[string]any)["url"] = []any{"/home", "/"}

	cfg, err := DecodeStorefront(doc)
	require.NoError(t, err)

	assert.Equal(t, KindStorefront, cfg.Kind)
	assert.Equal(t, 4445, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.PollInterval.Duration())
	require.Len(t, cfg.Pages, 1)
	assert.Equal(t, StringOrList{"/home", "/"}, cfg.Pages[0].URL)
	require.Len(t, cfg.Gateways, 1)
	assert.Equal(t, "browsing", cfg.Gateways[0].Name)
}
