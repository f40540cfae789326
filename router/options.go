package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// Middleware wraps an http.Handler to produce a new http.Handler.
type Middleware func(http.Handler) http.Handler

// Config carries the knobs of the default middleware chain.
type Config struct {
	// Timeout bounds each request; zero disables the timeout middleware.
	// The probe runner enforces its own execution budget, so this guard
	// exists for wedged clients, not slow probes.
	Timeout time.Duration
	// QuietdownRoutes lists paths excluded from request logging, typically
	// the high-frequency probe endpoints an orchestrator polls.
	QuietdownRoutes []string
	// HideHeaders lists header names whose values are redacted in logs,
	// such as credentials a probed endpoint requires.
	HideHeaders []string
}

// Option configures the router via the functional options pattern.
type Option func(*options)

type options struct {
	config        Config
	logger        *slog.Logger
	openapiDoc    *openapi3.T
	prepend       []Middleware
	append        []Middleware
	override      []Middleware
	enableOpenAPI bool
	enableTimeout bool
	enableLogging bool
}

// The default timeout comfortably exceeds the runner's two second probe
// budget plus serialization overhead.
func defaultOptions() *options {
	return &options{
		config: Config{
			Timeout: 15 * time.Second,
		},
		logger:        slog.Default(),
		enableOpenAPI: true,
		enableTimeout: true,
		enableLogging: true,
	}
}

func (o *options) middlewareChain() []Middleware {
	if len(o.override) > 0 {
		cloned := make([]Middleware, len(o.override))
		copy(cloned, o.override)
		return cloned
	}

	chain := make([]Middleware, 0, len(o.prepend)+len(o.append)+3)
	chain = append(chain, o.prepend...)
	chain = append(chain, o.defaultMiddlewares()...)
	chain = append(chain, o.append...)
	return chain
}

// Validation runs first so undocumented requests never reach a probe
// handler; logging runs last so the log reflects requests as the handler
// sees them.
func (o *options) defaultMiddlewares() []Middleware {
	chain := make([]Middleware, 0, 3)

	if o.enableOpenAPI && o.openapiDoc != nil {
		chain = append(chain, oapiMiddleware(o.openapiDoc))
	}

	if o.enableTimeout && o.config.Timeout > 0 {
		chain = append(chain, timeoutMiddleware(o.config.Timeout))
	}

	if o.enableLogging && o.logger != nil {
		chain = append(chain, loggingMiddleware(o.logger, o.config.QuietdownRoutes, o.config.HideHeaders))
	}

	return chain
}

// WithConfig replaces the router configuration with the provided value.
func WithConfig(cfg Config) Option {
	configCopy := sanitizeConfig(cfg)
	return func(o *options) {
		o.config = configCopy
	}
}

// WithConfigMutator applies a mutation to the router configuration after
// defaults are set.
func WithConfigMutator(mutator func(*Config)) Option {
	return func(o *options) {
		if mutator != nil {
			mutator(&o.config)
		}
	}
}

// WithLogger provides the structured logger to be used by the logging
// middleware; pass the same logger the runner uses so probe invocations and
// their HTTP requests interleave in one stream.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOpenAPIDoc wires the document requests are validated against,
// typically the one the status package embeds and serves.
func WithOpenAPIDoc(doc *openapi3.T) Option {
	return func(o *options) {
		o.openapiDoc = doc
	}
}

// WithMiddlewares prepends custom middlewares ahead of the default chain.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.prepend = append(o.prepend, middlewares...)
	}
}

// WithTrailingMiddlewares appends middlewares after the default chain.
func WithTrailingMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.append = append(o.append, middlewares...)
	}
}

// WithMiddlewareChain fully overrides the middleware chain with the provided
// sequence.
func WithMiddlewareChain(middlewares ...Middleware) Option {
	cloned := make([]Middleware, len(middlewares))
	copy(cloned, middlewares)
	return func(o *options) {
		o.override = cloned
	}
}

// WithoutOpenAPIValidation disables the OpenAPI validation middleware.
func WithoutOpenAPIValidation() Option {
	return func(o *options) {
		o.enableOpenAPI = false
	}
}

// WithoutTimeoutMiddleware disables the timeout middleware.
func WithoutTimeoutMiddleware() Option {
	return func(o *options) {
		o.enableTimeout = false
	}
}

// WithoutLoggingMiddleware disables the logging middleware.
func WithoutLoggingMiddleware() Option {
	return func(o *options) {
		o.enableLogging = false
	}
}

func sanitizeConfig(cfg Config) Config {
	cfg.QuietdownRoutes = cloneStrings(cfg.QuietdownRoutes)
	cfg.HideHeaders = cloneStrings(cfg.HideHeaders)
	return cfg
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
