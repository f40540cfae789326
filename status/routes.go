package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/drblury/selftest/probe"
	"github.com/drblury/selftest/runner"
)

type probeListPayload struct {
	Probes []string `json:"probes"`
}

type invokePayload struct {
	Name   string `json:"name"`
	Flag   int    `json:"flag"`
	Passed bool   `json:"passed"`
}

type statusPayload struct {
	Status  string         `json:"status"`
	Summary runner.Summary `json:"summary"`
}

// Routes registers every endpoint of the surface on the supplied mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /probes", h.ListProbes)
	mux.HandleFunc("GET /probes/{name}", h.InvokeProbe)
	mux.HandleFunc("GET /status", h.GetStatus)
	mux.HandleFunc("GET /version", h.GetVersion)
	mux.HandleFunc("GET /openapi.json", h.GetOpenAPIJSON)
}

// ListProbes returns every registered export name.
func (h *Handler) ListProbes(w http.ResponseWriter, r *http.Request) {
	h.RespondWithJSON(w, r, http.StatusOK, probeListPayload{Probes: h.registry.Names()})
}

// InvokeProbe runs a single probe addressed by its export name. Known probes
// always answer with their flag payload: 200 on pass, 503 on fail. Unknown
// names produce a 404 problem document.
func (h *Handler) InvokeProbe(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	ctx, cancel := context.WithTimeout(r.Context(), h.probeTimeout)
	defer cancel()

	flag, err := h.registry.Invoke(ctx, name)
	if err != nil {
		if errors.Is(err, probe.ErrNotRegistered) {
			h.HandleNotFoundError(w, r, err, "unknown probe requested")
			return
		}
		h.HandleInternalServerError(w, r, err, "probe invocation failed")
		return
	}

	payload := invokePayload{Name: name, Flag: flag, Passed: flag == 1}
	code := http.StatusOK
	if flag != 1 {
		code = http.StatusServiceUnavailable
	}
	h.RespondWithJSON(w, r, code, payload)
}

// GetStatus runs the aggregate driver over the export table and reports the
// outcome: 200 with status PASS when every probe passed, 503 with status FAIL
// otherwise. The payload carries the full per-probe summary either way.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	run := runner.New(h.registry,
		runner.WithTimeout(h.probeTimeout),
		runner.WithPrefix(h.prefix),
		runner.WithLogger(h.Logger()),
	)
	summary := run.Run(r.Context())

	payload := statusPayload{Status: "PASS", Summary: summary}
	code := http.StatusOK
	if !summary.AllPassed() {
		payload.Status = "FAIL"
		code = http.StatusServiceUnavailable
	}
	h.RespondWithJSON(w, r, code, payload)
}

// GetVersion returns the structure provided by the configured VersionProvider.
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	payload := h.versionProvider()
	if payload == nil {
		payload = map[string]string{}
	}
	h.RespondWithJSON(w, r, http.StatusOK, payload)
}

// GetOpenAPIJSON streams the OpenAPI document describing this surface. The
// Content-Type header is only committed once the provider has delivered a
// document; a write failure after that point can only be logged, since bytes
// may already be on the wire.
func (h *Handler) GetOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.openapiProvider()
	if err != nil {
		h.HandleInternalServerError(w, r, err, "failed to load openapi document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(doc); err != nil {
		h.Logger().Error("failed to write openapi response", "error", err)
	}
}
