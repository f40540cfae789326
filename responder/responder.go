// Package responder centralises JSON rendering, problem documents, and
// logging for the probe surface. Handlers share one Responder so probe
// payloads, error envelopes, and trace IDs stay consistent across the export
// table's endpoints.
package responder

import (
	"log/slog"
	"net/http"
)

const (
	jsonContentType    = "application/json"
	problemContentType = "application/problem+json"
	statusDocBaseURL   = "https://httpstatuses.io"
)

// ErrorClassifierFunc inspects an error and returns the HTTP status that
// should be used for the response, for example mapping an unknown export
// name to 404. The boolean indicates whether the error was classified and
// prevents the generic internal server handler from running.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// ResponderOption follows the functional options pattern used by NewResponder
// to configure optional collaborators.
type ResponderOption func(*Responder)

type statusMeta struct {
	typeURI  string
	title    string
	logLevel slog.Level
	logMsg   string
}

// StatusMetadata allows callers to customise how particular HTTP status codes
// are logged and represented in error payloads.
type StatusMetadata struct {
	TypeURI  string
	Title    string
	LogLevel slog.Level
	LogMsg   string
}

// Responder centralises error handling, JSON rendering, and logging for the
// probe endpoints. It provides structured error payloads with correlation
// identifiers and consistent log records.
type Responder struct {
	log             *slog.Logger
	statusMetadata  map[int]statusMeta
	errorClassifier ErrorClassifierFunc
}

// NewResponder constructs a Responder with metadata defaults for the statuses
// the probe surface actually emits and the global slog logger. Use
// ResponderOption functions to override specific behaviours.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log:            slog.Default(),
		statusMetadata: defaultStatusMetadata(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger for error reporting and payload
// logging.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier installs a classifier used by HandleErrors to derive
// the HTTP status code from returned errors, for example mapping
// probe.ErrNotRegistered to 404.
func WithErrorClassifier(classifier ErrorClassifierFunc) ResponderOption {
	return func(r *Responder) {
		r.errorClassifier = classifier
	}
}

// WithStatusMetadata overrides the error metadata used for a specific HTTP
// status code, letting embedders rebrand how probe errors are titled and
// logged.
func WithStatusMetadata(status int, meta StatusMetadata) ResponderOption {
	return func(r *Responder) {
		if r.statusMetadata == nil {
			r.statusMetadata = make(map[int]statusMeta)
		}
		level := meta.LogLevel
		if level == 0 {
			level = slog.LevelError
		}
		title := meta.Title
		if title == "" {
			title = http.StatusText(status)
		}
		msg := meta.LogMsg
		if msg == "" {
			msg = title
		}
		r.statusMetadata[status] = statusMeta{
			typeURI:  meta.TypeURI,
			title:    title,
			logLevel: level,
			logMsg:   msg,
		}
	}
}

// Logger returns the slog logger used internally by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) classifyError(err error) (int, bool) {
	if r.errorClassifier == nil {
		return 0, false
	}
	return r.errorClassifier(err)
}

// defaultStatusMetadata covers the statuses the export surface produces: 404
// for unknown export names, 503 when a probe dependency is down, 400 for
// requests the OpenAPI validator rejects, and 500 for everything broken in
// the surface itself. Only the 500 logs at error level; the rest describe
// caller mistakes or probed-dependency state, not faults of this process.
func defaultStatusMetadata() map[int]statusMeta {
	return map[int]statusMeta{
		http.StatusInternalServerError: {title: http.StatusText(http.StatusInternalServerError), logLevel: slog.LevelError, logMsg: "Internal Server Error"},
		http.StatusBadRequest:          {title: http.StatusText(http.StatusBadRequest), logLevel: slog.LevelWarn, logMsg: "Bad Request"},
		http.StatusNotFound:            {title: http.StatusText(http.StatusNotFound), logLevel: slog.LevelWarn, logMsg: "Unknown Export Name"},
		http.StatusServiceUnavailable:  {title: http.StatusText(http.StatusServiceUnavailable), logLevel: slog.LevelWarn, logMsg: "Probe Dependency Unavailable"},
	}
}
