package report

import (
	_ "embed"
	"html/template"
)

//go:embed assets/report.html
var runReportHTML []byte

var runReportTemplate = template.Must(
	template.New("run-report").Parse(string(runReportHTML)),
)
