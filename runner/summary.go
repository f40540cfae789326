package runner

// Outcome records one probe invocation. Flag carries the boolean-valued
// integer contract (1 pass, 0 fail); Detail holds the failure text for
// reporters and stays empty on success.
type Outcome struct {
	Name   string `json:"name"`
	Flag   int    `json:"flag"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Summary aggregates one full run of the driver.
type Summary struct {
	Probes []Outcome `json:"probes"`
	Total  int       `json:"total"`
	Passed int       `json:"passed"`
	Failed int       `json:"failed"`
}

// AllPassed reports whether every invoked probe returned flag 1.
func (s Summary) AllPassed() bool {
	return s.Failed == 0
}

// ExitCode reduces the run to the process exit status: 0 when every probe
// passed, 1 otherwise.
func (s Summary) ExitCode() int {
	if s.AllPassed() {
		return 0
	}
	return 1
}
