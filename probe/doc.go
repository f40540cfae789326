// Package probe defines the self-check contract and the export table that
// makes each check invocable by a stable string name. Adapters convert
// database pings, HTTP endpoints, custom ping functions, and fixed
// binary-operation checks into probes. See ExampleNewBinaryOpProbe and
// ExampleRegistry for quick-start patterns.
package probe
