// Package status exposes an export table over HTTP. Each probe stays
// individually addressable under /probes/{name} using its stable export name,
// /status runs the aggregate driver, and /openapi.json serves the machine
// readable description of the surface. See ExampleHandler_full for a runnable
// wiring of the handler over the simple_add fixture.
package status
