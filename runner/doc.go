// Package runner is the aggregate driver over an export table: one pass
// through the selected probes, one Outcome per probe, and a Summary whose
// ExitCode follows the process convention (0 means every probe passed).
package runner
