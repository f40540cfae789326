// Package router wraps http.ServeMux with request logging, timeouts, and
// OpenAPI request validation so the probe surface can be served behind one
// middleware chain. TestNewValidatesAgainstOpenAPIDoc shows the validation
// wiring against the status package's embedded document.
package router
