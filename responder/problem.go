package responder

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ProblemDetails aligns HTTP error responses with RFC 9457 problem documents.
// On the probe surface these describe the errors around a probe rather than
// its outcome: an unknown export name, a broken document provider. A failing
// probe is not a problem document; it stays an ordinary payload with flag 0.
type ProblemDetails struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *Responder) metadataFor(status int) statusMeta {
	meta, ok := r.statusMetadata[status]
	if !ok {
		meta = statusMeta{}
	}
	return normalizeStatusMeta(status, meta)
}

// buildProblemDetails stamps the document with the request URI of the
// invocation and a fresh trace ID; Detail carries the underlying error text
// verbatim, the way a probe's Outcome carries its failure detail.
func (r *Responder) buildProblemDetails(req *http.Request, status int, err error, meta statusMeta) ProblemDetails {
	return ProblemDetails{
		Type:      meta.typeURI,
		Title:     meta.title,
		Status:    status,
		Detail:    err.Error(),
		Instance:  requestInstance(req),
		TraceID:   nextTraceID(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func (r *Responder) logProblem(req *http.Request, meta statusMeta, err error, traceID string, status int, msgs []string) {
	logger := r.logger().With("error", err.Error(), "traceId", traceID, "status", status)
	if len(msgs) > 0 {
		logger = logger.With("logMessages", msgs)
	}
	logger.Log(requestContext(req), meta.logLevel, meta.logMsg)
}

// normalizeStatusMeta fills the blanks of a partially specified metadata
// entry so callers only override what they care about.
func normalizeStatusMeta(status int, meta statusMeta) statusMeta {
	if meta.logLevel == 0 {
		meta.logLevel = slog.LevelError
	}
	if meta.title == "" {
		meta.title = http.StatusText(status)
	}
	if meta.logMsg == "" {
		meta.logMsg = meta.title
	}
	if meta.typeURI == "" {
		meta.typeURI = fmt.Sprintf("%s/%d", statusDocBaseURL, status)
	}
	return meta
}
