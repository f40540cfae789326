package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Func represents a single self-check. A nil return marks the probe as
// passed; any error marks it as failed. Probes must be side-effect free and
// idempotent so callers may invoke them repeatedly or concurrently.
type Func func(ctx context.Context) error

// PingFunc represents a health check that returns an error when the resource
// is unavailable.
type PingFunc func(ctx context.Context) error

// BinaryOp is a two-operand integer operation supplied by the system under
// check, for example an addition routine exported by another module.
type BinaryOp func(a, b int) int

// DBPinger captures the subset of *sql.DB used for database probes.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HTTPDoer represents the subset of *http.Client required by the HTTP probe
// helper.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// MongoPinger captures the subset of the MongoDB client used for probes.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Flag reduces a probe outcome to the boolean-valued integer used by the
// driver and the export surface: 1 when the probe passes, 0 otherwise. A
// failed check and an errored check both collapse to 0; there is no third
// state.
func Flag(ctx context.Context, fn Func) int {
	if fn == nil {
		return 0
	}
	if err := fn(contextOrBackground(ctx)); err != nil {
		return 0
	}
	return 1
}

// NewBinaryOpProbe builds a probe over a fixed pair of integer operands: it
// applies op to a and b and compares the result against want using exact
// integer equality. The operands and the expected literal are part of the
// probe's contract; callers pick them so the check discriminates the
// implementations they care about.
func NewBinaryOpProbe(name string, op BinaryOp, a, b, want int) Func {
	return func(ctx context.Context) error {
		if op == nil {
			return nilComponentError(name, "operation")
		}

		got := op(a, b)
		if got != want {
			return fmt.Errorf("%s probe: op(%d, %d) = %d, want %d", name, a, b, got, want)
		}
		return nil
	}
}

// NewPingProbe wraps a PingFunc with standardised error handling so bespoke
// checks plug into the registry and driver like any other probe.
func NewPingProbe(name string, fn PingFunc) Func {
	return func(ctx context.Context) error {
		if fn == nil {
			return nilComponentError(name, "ping function")
		}
		ctx = contextOrBackground(ctx)

		if err := fn(ctx); err != nil {
			return fmt.Errorf("%s probe failed: %w", name, err)
		}
		return nil
	}
}

// NewDBPingProbe creates a Func that pings databases such as PostgreSQL using
// the provided client.
func NewDBPingProbe(name string, db DBPinger) Func {
	return func(ctx context.Context) error {
		if db == nil {
			return nilComponentError(name, "db client")
		}
		ctx = contextOrBackground(ctx)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("%s probe failed: %w", name, err)
		}
		return nil
	}
}

// NewMongoPingProbe creates a Func that pings MongoDB using the provided
// client. If readPref is nil it defaults to readpref.Primary.
func NewMongoPingProbe(client MongoPinger, readPref *readpref.ReadPref) Func {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.New("mongo probe: client is nil")
		}

		ctx = contextOrBackground(ctx)

		rp := readPref
		if rp == nil {
			rp = readpref.Primary()
		}

		if err := client.Ping(ctx, rp); err != nil {
			return fmt.Errorf("mongo probe failed: %w", err)
		}
		return nil
	}
}

// NewHTTPProbe creates a Func that performs an HTTP request against the
// supplied endpoint. The probe succeeds when the response status code is
// within the 2xx range.
func NewHTTPProbe(name, method, target string, client HTTPDoer, opts ...HTTPProbeOption) Func {
	return func(ctx context.Context) error {
		trimmedTarget := strings.TrimSpace(target)
		if trimmedTarget == "" {
			return fmt.Errorf("%s probe: target URL is required", name)
		}

		verb := strings.ToUpper(strings.TrimSpace(method))
		if verb == "" {
			verb = http.MethodGet
		}

		ctx = contextOrBackground(ctx)

		req, err := http.NewRequestWithContext(ctx, verb, trimmedTarget, nil)
		if err != nil {
			return fmt.Errorf("%s probe: failed to build request: %w", name, err)
		}

		cfg := buildHTTPProbeConfig(client, opts...)

		if err := cfg.applyMutators(req); err != nil {
			return fmt.Errorf("%s probe: request mutation failed: %w", name, err)
		}

		resp, err := cfg.client.Do(req)
		if err != nil {
			return fmt.Errorf("%s probe request failed: %w", name, err)
		}
		defer resp.Body.Close()

		if err := cfg.validateResponse(resp); err != nil {
			return fmt.Errorf("%s probe: %w", name, err)
		}

		if cfg.drainResponse {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				return fmt.Errorf("%s probe: failed to drain response body: %w", name, err)
			}
		}
		return nil
	}
}
