// Package report renders a runner.Summary for humans and machines. The text
// form prints one line per probe plus a totals line, the JSON form emits the
// summary document as-is for downstream tooling, and the HTML form renders a
// standalone page with one colour-coded row per probe.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/drblury/selftest/jsonutil"
	"github.com/drblury/selftest/runner"
)

// WriteText renders the summary as a plain-text report: one "name: pass" or
// "name: fail (detail)" line per probe, then a totals line.
func WriteText(w io.Writer, summary runner.Summary) error {
	for _, outcome := range summary.Probes {
		var line string
		if outcome.Passed {
			line = fmt.Sprintf("%s: pass\n", outcome.Name)
		} else if outcome.Detail != "" {
			line = fmt.Sprintf("%s: fail (%s)\n", outcome.Name, outcome.Detail)
		} else {
			line = fmt.Sprintf("%s: fail\n", outcome.Name)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d/%d probes passed\n", summary.Passed, summary.Total)
	return err
}

// WriteJSON emits the summary as a single compact JSON document followed by a
// newline.
func WriteJSON(w io.Writer, summary runner.Summary) error {
	return jsonutil.Encode(w, summary)
}

type htmlReportData struct {
	Summary     runner.Summary
	Status      string
	StatusClass string
	Generated   string
}

// WriteHTML renders the summary as a self-contained HTML page: an aggregate
// pass/fail tag, a table with one colour-coded row per probe, and a
// generation timestamp in the footer.
func WriteHTML(w io.Writer, summary runner.Summary) error {
	data := htmlReportData{
		Summary:     summary,
		Status:      "PASS",
		StatusClass: "is-success",
		Generated:   time.Now().UTC().Format(time.RFC3339),
	}
	if !summary.AllPassed() {
		data.Status = "FAIL"
		data.StatusClass = "is-danger"
	}

	return runReportTemplate.Execute(w, data)
}

// WriteJSONIndent emits the summary as an indented JSON document.
func WriteJSONIndent(w io.Writer, summary runner.Summary) error {
	data, err := jsonutil.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
