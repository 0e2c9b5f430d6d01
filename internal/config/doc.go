// Package config provides the configuration document model, schema
// contracts, validation, and loading for gateway and storefront
// services.
//
// A configuration document is a YAML mapping describing either a
// gateway (a backend-for-frontend serving page fragments and an API
// surface) or a storefront (an aggregator of gateway-provided pages).
// The top-level kind field tags the document shape.
//
// # Validation
//
// Every entity has a declarative shape descriptor (see schema.go). One
// generic walker validates a raw document depth-first against the shape
// for its kind, collecting every violation instead of stopping at the
// first:
//
//	doc, err := config.LoadDocument("gateway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := config.ValidateGateway(doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Materialization
//
// A validated raw document is decoded into the typed model with
// DecodeGateway or DecodeStorefront. Handler and middleware reference
// fields are typed as any: they hold the reference string until the
// configurator's injection step replaces them with concrete
// dependencies from the registry.
package config
