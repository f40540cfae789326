package status

import (
	_ "embed"
	"errors"
	"time"

	"github.com/drblury/selftest/probe"
	"github.com/drblury/selftest/responder"
)

//go:embed openapi.json
var openapiDocument []byte

const defaultProbeTimeout = 2 * time.Second

// VersionProvider returns the payload that will be exposed by the version
// endpoint. The provider allows callers to inject their own source for build
// metadata or runtime diagnostics.
type VersionProvider func() any

// OpenAPIProvider returns the raw OpenAPI document describing this surface.
// It defaults to the embedded document shipped with the package.
type OpenAPIProvider func() ([]byte, error)

// Option follows the functional options pattern used by NewHandler to
// configure optional collaborators such as the responder, the probe
// selection, and the version provider.
type Option func(*Handler)

// Handler exposes an export table over HTTP: every probe is addressable by
// its stable export name independently of the aggregate driver, and the
// aggregate run is one endpoint among the others. The handler embeds a
// responder so all payloads share the same JSON envelopes and problem
// documents.
type Handler struct {
	*responder.Responder
	registry        *probe.Registry
	versionProvider VersionProvider
	openapiProvider OpenAPIProvider
	probeTimeout    time.Duration
	prefix          string
}

// NewHandler constructs a Handler over the given export table. Callers can
// supply Option values to plug in domain specific providers or override the
// base responder implementation.
func NewHandler(registry *probe.Registry, opts ...Option) *Handler {
	h := &Handler{
		Responder: responder.NewResponder(),
		registry:  registry,
		versionProvider: func() any {
			return map[string]string{}
		},
		openapiProvider: func() ([]byte, error) {
			if len(openapiDocument) == 0 {
				return nil, errors.New("openapi document not embedded")
			}
			return openapiDocument, nil
		},
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// WithResponder replaces the responder used to craft JSON responses and
// handle error reporting.
func WithResponder(r *responder.Responder) Option {
	return func(h *Handler) {
		if r != nil {
			h.Responder = r
		}
	}
}

// WithVersionProvider swaps the default build metadata provider with a user
// supplied implementation.
func WithVersionProvider(provider VersionProvider) Option {
	return func(h *Handler) {
		if provider != nil {
			h.versionProvider = provider
		}
	}
}

// WithOpenAPIProvider sets the source of the OpenAPI JSON document served by
// the documentation endpoint.
func WithOpenAPIProvider(provider OpenAPIProvider) Option {
	return func(h *Handler) {
		if provider != nil {
			h.openapiProvider = provider
		}
	}
}

// WithProbeTimeout adjusts the maximum duration allowed for probe execution,
// both per invocation and for the aggregate run.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.probeTimeout = timeout
		}
	}
}

// WithPrefix narrows the aggregate status run to export names starting with
// prefix. Individual invocation by name is unaffected.
func WithPrefix(prefix string) Option {
	return func(h *Handler) {
		h.prefix = prefix
	}
}
