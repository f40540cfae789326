// Command selftest runs the simple_add fixture through the aggregate driver
// and reports the outcome through its exit status: 0 when every probe passed,
// 1 when at least one failed. Individual probes can be invoked by their
// export name, mirroring the per-probe granularity the registry offers to
// embedding programs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/drblury/selftest/fixture"
	"github.com/drblury/selftest/probe"
	"github.com/drblury/selftest/report"
	"github.com/drblury/selftest/runner"
)

var exit = os.Exit

func main() {
	exit(selftestMain(os.Stdout, os.Stderr, os.Args...))
}

func selftestMain(stdout, stderr io.Writer, args ...string) int {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)

	list := flags.Bool("list", false, "list the export names and exit")
	probeName := flags.String("probe", "", "invoke a single probe by export name")
	jsonOut := flags.Bool("json", false, "emit the run summary as JSON")
	htmlOut := flags.Bool("html", false, "emit the run summary as an HTML page")
	timeout := flags.Duration("timeout", 2*time.Second, "time budget for the run")
	prefix := flags.String("prefix", "", "only run probes whose export name starts with this prefix")
	verbose := flags.Bool("v", false, "log each probe invocation")

	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	reg := probe.NewRegistry()
	fixture.Register(reg, func(a, b int) int { return a + b })

	if *list {
		for _, name := range reg.NamesWithPrefix(*prefix) {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if *probeName != "" {
		return invokeSingle(stdout, stderr, reg, *probeName, *timeout)
	}

	run := runner.New(reg,
		runner.WithTimeout(*timeout),
		runner.WithPrefix(*prefix),
		runner.WithLogger(logger),
	)
	summary := run.Run(context.Background())

	write := report.WriteText
	switch {
	case *jsonOut:
		write = report.WriteJSON
	case *htmlOut:
		write = report.WriteHTML
	}
	if err := write(stdout, summary); err != nil {
		fmt.Fprintln(stderr, "selftest: failed to write report:", err)
		return 2
	}

	return summary.ExitCode()
}

func invokeSingle(stdout, stderr io.Writer, reg *probe.Registry, name string, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	outcome, err := reg.Invoke(ctx, name)
	if err != nil {
		fmt.Fprintln(stderr, "selftest:", err)
		return 2
	}

	fmt.Fprintf(stdout, "%s: %d\n", name, outcome)
	// The single-probe exit status is the negated flag.
	return 1 - outcome
}
