package builtin

import (
	"net/http"

	"github.com/denizatay/fragway/internal/registry"
)

// Middleware is the request-pipeline step shape stored under
// registry.KindMiddleware.
type Middleware func(http.Handler) http.Handler

// Well-known names of the built-in dependencies.
const (
	HandlerStatic       = "static"
	MiddlewareCORS      = "cors"
	MiddlewareRequestID = "requestId"
)

// Register populates reg with the built-in handlers and middlewares.
// fragmentsFolder is the directory the static handler serves from.
func Register(reg *registry.Registry, fragmentsFolder string) {
	reg.Register(HandlerStatic, registry.KindHandler, Static(fragmentsFolder))
	reg.Register(MiddlewareCORS, registry.KindMiddleware, Middleware(CORS(nil)))
	reg.Register(MiddlewareRequestID, registry.KindMiddleware, Middleware(RequestID()))
}

// Static returns a handler serving fragment content from dir.
func Static(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
