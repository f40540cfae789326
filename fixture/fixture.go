// Package fixture ships the canonical simple_add self-check pair: two probes
// over an externally supplied add routine, plus the main-style aggregator
// that folds both outcomes into a single exit status. The fixture is small on
// purpose; it is the reference wiring for the probe and runner packages and
// doubles as a worked example of a discriminating versus a weak check.
package fixture

import (
	"context"

	"github.com/drblury/selftest/probe"
)

// Export names for the two checks. Callers address the probes only by these
// strings; the Go identifiers behind them are free to change.
const (
	TestAdd1 = "test_add_1"
	TestAdd2 = "test_add_2"
)

// AddFunc is the external addition routine under check. The fixture assumes
// it is invocable with two ints and returns one int; everything else about
// its implementation is the supplier's business.
type AddFunc func(a, b int) int

// addOneTwo expects add(1, 2) == 3. The operands discriminate true addition
// from a multiplication (1*2 = 2) or subtraction (1-2 = -1) substitution.
func addOneTwo(add AddFunc) probe.Func {
	return probe.NewBinaryOpProbe("add", probe.BinaryOp(add), 1, 2, 3)
}

// addTwoTwo expects add(2, 2) == 4. This check still passes if the addition
// operator is replaced by a multiplication operator; it is kept as a
// deliberately weak case and must not be "corrected".
func addTwoTwo(add AddFunc) probe.Func {
	return probe.NewBinaryOpProbe("add", probe.BinaryOp(add), 2, 2, 4)
}

// Register installs both checks in the export table under their stable names.
func Register(r *probe.Registry, add AddFunc) {
	r.Register(TestAdd1, addOneTwo(add))
	r.Register(TestAdd2, addTwoTwo(add))
}

// Main mirrors the fixture's process entry point: it invokes both checks once
// and returns the negated conjunction of their flags. 0 means both passed;
// 1 means at least one failed.
func Main(add AddFunc) int {
	ctx := context.Background()

	one := probe.Flag(ctx, addOneTwo(add))
	two := probe.Flag(ctx, addTwoTwo(add))

	if one == 1 && two == 1 {
		return 0
	}
	return 1
}
