package probe

import (
	"context"
	"fmt"
)

// Probes accept a nil context so they can be invoked directly, outside the
// registry and driver, without ceremony.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// A probed endpoint counts as healthy on any 2xx answer unless the probe was
// built with an explicit status expectation.
func successRangeExpectation(status int) bool {
	return status >= 200 && status < 300
}

// nilComponentError reports a probe whose collaborator was never supplied.
// The probe still exists under its export name; invoking it just fails with
// flag 0 like any other failing check.
func nilComponentError(name, component string) error {
	return fmt.Errorf("%s probe: %s is nil", name, component)
}
