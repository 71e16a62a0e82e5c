// Command fieldcheck runs the field validation fixture suites and prints a
// ✓/✗ line per case. It exits with status 1 when any case fails.
//
//	fieldcheck                 # every embedded suite
//	fieldcheck -suite phone    # one suite
//	fieldcheck -dir ./suites   # suites from *.yaml files in a directory
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dmitrymomot/carelink/pkg/config"
	"github.com/dmitrymomot/carelink/pkg/fixture"
	"github.com/dmitrymomot/carelink/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code. Reports go to
// stdout, logs and usage errors to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fieldcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	suiteName := fs.String("suite", "", "run only the named suite")
	dir := fs.String("dir", "", "load suites from *.yaml files in this directory instead of the embedded ones")
	list := fs.Bool("list", false, "print the suite names and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var app config.App
	if err := config.Load(&app); err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	l, err := app.Logger(logger.WithOutput(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to configure logger: %v\n", err)
		return 1
	}

	suites, err := loadSuites(*dir)
	if err != nil {
		l.Error("failed to load fixture suites", logger.Error(err))
		return 1
	}

	if *list {
		for _, name := range fixture.Names(suites) {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if *suiteName != "" {
		s, err := fixture.Find(suites, *suiteName)
		if err != nil {
			l.Error("failed to select fixture suite", logger.Error(err))
			return 1
		}
		suites = []fixture.Suite{s}
	}

	runner := fixture.NewRunner(fixture.WithOutput(stdout), fixture.WithLogger(l))
	summary, err := runner.RunAll(ctx, suites)
	if err != nil {
		l.Error("fixture run aborted", logger.Error(err))
		return 1
	}
	if !summary.OK() {
		return 1
	}
	return 0
}

func loadSuites(dir string) ([]fixture.Suite, error) {
	if dir == "" {
		return fixture.Default()
	}
	return fixture.Load(os.DirFS(dir), "*.yaml")
}
