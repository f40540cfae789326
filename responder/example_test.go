package responder_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/drblury/selftest/responder"
)

func ExampleResponder_full() {
	errUnknownProbe := errors.New("probe not registered")
	r := responder.NewResponder(
		responder.WithErrorClassifier(func(err error) (int, bool) {
			if errors.Is(err, errUnknownProbe) {
				return http.StatusNotFound, true
			}
			return 0, false
		}),
	)

	exports := map[string]int{"test_add_1": 1}
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := req.URL.Query().Get("name")
		flag, ok := exports[name]
		if !ok {
			r.HandleErrors(w, req, errUnknownProbe)
			return
		}
		r.RespondWithJSON(w, req, http.StatusOK, map[string]int{"flag": flag})
	})

	knownReq := httptest.NewRequest(http.MethodGet, "/probes?name=test_add_1", nil)
	knownRec := httptest.NewRecorder()
	handler.ServeHTTP(knownRec, knownReq)
	fmt.Println(knownRec.Code)
	fmt.Println(strings.TrimSpace(knownRec.Body.String()))

	missingReq := httptest.NewRequest(http.MethodGet, "/probes?name=test_sub_1", nil)
	missingRec := httptest.NewRecorder()
	handler.ServeHTTP(missingRec, missingReq)

	var problem responder.ProblemDetails
	_ = json.Unmarshal(missingRec.Body.Bytes(), &problem)
	fmt.Println(problem.Status)
	fmt.Println(problem.Title)

	// Output:
	// 200
	// {"flag":1}
	// 404
	// Not Found
}

func ExampleWithStatusMetadata() {
	r := responder.NewResponder(
		responder.WithStatusMetadata(http.StatusServiceUnavailable, responder.StatusMetadata{
			Title:   "Probe failed",
			LogMsg:  "self-check failed",
			TypeURI: "https://status.example.com/probe-failed",
		}),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	r.HandleAPIError(rec, req, http.StatusServiceUnavailable, errors.New("test_add_1 returned 0"))

	fmt.Println(rec.Code)
	fmt.Println(strings.Contains(rec.Body.String(), "\"title\":\"Probe failed\""))

	// Output:
	// 503
	// true
}
