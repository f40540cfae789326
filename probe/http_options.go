package probe

import (
	"fmt"
	"net/http"
)

// HTTPStatusExpectation decides whether a status code from the probed
// endpoint counts as a pass.
type HTTPStatusExpectation func(status int) bool

// HTTPRequestMutator tweaks the outbound probe request prior to dispatch,
// typically to attach auth headers the probed endpoint requires.
type HTTPRequestMutator func(req *http.Request) error

// HTTPResponseValidator inspects the probed endpoint's response and can veto
// an otherwise passing probe, for example when a health payload reports a
// degraded dependency behind a 200.
type HTTPResponseValidator func(resp *http.Response) error

// HTTPProbeOption configures the behaviour of NewHTTPProbe.
type HTTPProbeOption func(*httpProbeConfig)

type httpProbeConfig struct {
	client             HTTPDoer
	expect             HTTPStatusExpectation
	requestMutators    []HTTPRequestMutator
	responseValidators []HTTPResponseValidator
	drainResponse      bool
}

func buildHTTPProbeConfig(client HTTPDoer, opts ...HTTPProbeOption) *httpProbeConfig {
	cfg := &httpProbeConfig{
		client: client,
		expect: successRangeExpectation,
		// Drained bodies keep the client connection reusable across the
		// repeated invocations an idempotent probe invites.
		drainResponse: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	if cfg.expect == nil {
		cfg.expect = successRangeExpectation
	}
	return cfg
}

func (c *httpProbeConfig) applyMutators(req *http.Request) error {
	for _, mutate := range c.requestMutators {
		if mutate == nil {
			continue
		}
		if err := mutate(req); err != nil {
			return err
		}
	}
	return nil
}

func (c *httpProbeConfig) validateResponse(resp *http.Response) error {
	if c.expect != nil && !c.expect(resp.StatusCode) {
		return fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	for _, validator := range c.responseValidators {
		if validator == nil {
			continue
		}
		if err := validator(resp); err != nil {
			return err
		}
	}
	return nil
}

// WithHTTPClient overrides the HTTP client used to reach the probed endpoint.
func WithHTTPClient(client HTTPDoer) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.client = client
	}
}

// WithHTTPStatusExpectation installs a custom pass/fail rule for the probed
// endpoint's status code.
func WithHTTPStatusExpectation(expect HTTPStatusExpectation) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.expect = expect
	}
}

// WithHTTPAllowedStatuses restricts the probe to pass only on the provided
// status codes, replacing the default 2xx range.
func WithHTTPAllowedStatuses(statuses ...int) HTTPProbeOption {
	allowed := make(map[int]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	return func(cfg *httpProbeConfig) {
		cfg.expect = func(status int) bool {
			if len(allowed) == 0 {
				return successRangeExpectation(status)
			}
			_, ok := allowed[status]
			return ok
		}
	}
}

// WithHTTPRequestMutator registers a mutator that runs before the probe
// request is dispatched.
func WithHTTPRequestMutator(mutator HTTPRequestMutator) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.requestMutators = append(cfg.requestMutators, mutator)
	}
}

// WithHTTPResponseValidator registers a validator that runs after the probed
// endpoint has answered.
func WithHTTPResponseValidator(validator HTTPResponseValidator) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.responseValidators = append(cfg.responseValidators, validator)
	}
}

// WithHTTPDrainResponseBody toggles draining of the response body after
// validation. Disable it only for endpoints whose bodies are too large to
// read on every probe invocation.
func WithHTTPDrainResponseBody(enabled bool) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.drainResponse = enabled
	}
}
