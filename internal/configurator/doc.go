// Package configurator turns raw configuration documents into
// materialized runtime configurations.
//
// A configurator runs a fixed two-step sequence on every Configure
// call: validate the raw document against its schema, then inject
// dependencies by resolving symbolic handler and middleware references
// against the registry. Only when both steps succeed is the
// materialized document stored as the active configuration, replacing
// the previous one; on any failure the previously active configuration
// is left untouched.
//
// Exactly two configurator variants exist. GatewayConfigurator
// validates gateway documents and resolves their references;
// StorefrontConfigurator validates storefront documents, which carry no
// references, so its injection step is the identity.
//
//	reg := registry.New()
//	reg.Register("indexHandler", registry.KindHandler, handleIndex)
//
//	c := configurator.NewGateway(reg)
//	if err := c.Configure(doc); err != nil {
//	    log.Fatal(err)
//	}
//	active := c.Configuration()
//
// Configure is synchronous and performs no retries. Concurrent
// Configure calls on the same instance must be serialized by the
// caller; calls on independent instances are safe.
package configurator
