package status_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/drblury/selftest/fixture"
	"github.com/drblury/selftest/probe"
	"github.com/drblury/selftest/status"
)

func ExampleHandler_full() {
	reg := probe.NewRegistry()
	fixture.Register(reg, func(a, b int) int { return a + b })

	mux := http.NewServeMux()
	status.NewHandler(reg,
		status.WithVersionProvider(func() any {
			return map[string]string{"service": "selftest"}
		}),
	).Routes(mux)

	invokeRec := httptest.NewRecorder()
	mux.ServeHTTP(invokeRec, httptest.NewRequest(http.MethodGet, "/probes/test_add_1", nil))
	fmt.Println(invokeRec.Code)
	fmt.Println(strings.TrimSpace(invokeRec.Body.String()))

	statusRec := httptest.NewRecorder()
	mux.ServeHTTP(statusRec, httptest.NewRequest(http.MethodGet, "/status", nil))
	fmt.Println(statusRec.Code)

	var payload struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(statusRec.Body.Bytes(), &payload)
	fmt.Println(payload.Status)

	// Output:
	// 200
	// {"name":"test_add_1","flag":1,"passed":true}
	// 200
	// PASS
}
