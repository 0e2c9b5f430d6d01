// Package registry provides the injectable dependency registry for the
// gateway configuration pipeline.
//
// The registry stores concrete handler and middleware implementations
// under a (kind, name) key. Configuration documents reference these
// dependencies symbolically by name; the configurator resolves the
// references against the registry during injection.
//
// The expected lifecycle is register-then-freeze: all Register calls
// complete during bootstrap, before any configurator runs. The registry
// does not enforce name uniqueness; a later Register with the same
// (kind, name) overwrites the earlier entry.
//
// # Usage
//
//	reg := registry.New()
//	reg.Register("indexHandler", registry.KindHandler, handleIndex)
//	reg.Register("authz", registry.KindMiddleware, authzMiddleware)
//
//	dep, err := reg.Get("indexHandler", registry.KindHandler)
package registry
