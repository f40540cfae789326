// Package selftest bundles a small self-check harness: named probes that
// reduce one computation to a pass/fail flag, an export table that makes each
// probe invocable by a stable string name, and a driver that runs every
// registered probe once and folds the flags into a single process exit
// status. The module stays intentionally small and encourages teams to pull
// in only the packages they need, keeping binaries lean and dependencies
// predictable.
//
// The probe package defines the probe contract and the export registry, plus
// adapters that turn database pings, HTTP endpoints, or fixed arithmetic
// checks into probes. The fixture package ships the canonical simple_add
// check pair used throughout the documentation. The runner package is the
// aggregate driver, report renders run summaries as text or JSON, and status
// exposes the export table over HTTP so external callers can invoke any probe
// by name without going through the driver.
//
// # Packages
//
//   - probe: probe contract, export registry, and adapters for databases,
//     HTTP endpoints, and fixed binary-operation checks.
//   - fixture: the simple_add probe pair and its main-style aggregator.
//   - runner: runs every registered probe once and computes the exit status.
//   - report: text and JSON renderings of a run summary.
//   - status: HTTP surface for listing, invoking, and aggregating probes.
//   - responder: consistent JSON success/error envelopes with trace IDs.
//   - router: ServeMux wrapper with logging, timeout, and OpenAPI validation.
//   - jsonutil: tiny helpers around sonic for encoding and decoding.
//
// # Quick Start
//
//	reg := probe.NewRegistry()
//	fixture.Register(reg, func(a, b int) int { return a + b })
//
//	run := runner.New(reg)
//	summary := run.Run(context.Background())
//	report.WriteText(os.Stdout, summary)
//	os.Exit(summary.ExitCode())
//
// Each probe stays individually addressable through its export name, either
// via probe.Registry.Invoke or over HTTP through the status package. The exit
// status follows the usual process convention: zero means every probe passed.
package selftest
