// Package builtin provides the handler and middleware implementations
// the runtime ships by default, and registers them in the injectable
// registry under their well-known names.
//
// Configuration documents may reference these names without any
// user-supplied registration:
//
//   - handler "static": serves fragment content from the fragments
//     folder
//   - middleware "cors": Cross-Origin Resource Sharing headers
//   - middleware "requestId": unique request identifier injection
package builtin
