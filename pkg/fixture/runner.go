package fixture

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

const previewLength = 40

// Failure describes a case whose actual result differs from the expected one.
type Failure struct {
	Index       int
	Description string
	Input       string
	Expected    string
	Actual      string
}

// Report is the result of running one suite.
type Report struct {
	Suite    string
	Passed   int
	Total    int
	Failures []Failure
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Passed == r.Total
}

// Summary aggregates the reports of a run.
type Summary struct {
	RunID   uuid.UUID
	Reports []Report
}

func (s Summary) Passed() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Passed
	}
	return n
}

func (s Summary) Total() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Total
	}
	return n
}

// OK reports whether every suite passed.
func (s Summary) OK() bool {
	for _, r := range s.Reports {
		if !r.OK() {
			return false
		}
	}
	return true
}

// Runner executes suites and prints the harness output.
type Runner struct {
	out   io.Writer
	log   *slog.Logger
	clock func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where the ✓/✗ lines are written. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock sets the time used by suites that do not pin now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.clock = now
		}
	}
}

// NewRunner returns a Runner writing to io.Discard unless configured otherwise.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:   io.Discard,
		log:   slog.New(slog.DiscardHandler),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every case of the suite. Case failures are reported in the
// Report, not as an error; errors mean the suite could not run at all.
func (r *Runner) Run(ctx context.Context, s Suite) (Report, error) {
	check, err := r.checker(s)
	if err != nil {
		return Report{}, err
	}

	report := Report{Suite: s.Name, Total: len(s.Cases)}
	fmt.Fprintf(r.out, "Running %s tests...\n\n", s.Name)

	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		input := c.Value()
		want, got := check(c, input)
		if want == got {
			report.Passed++
			fmt.Fprintf(r.out, "✓ Test %d: %s\n", i+1, c.Description)
			continue
		}

		report.Failures = append(report.Failures, Failure{
			Index:       i + 1,
			Description: c.Description,
			Input:       input,
			Expected:    want,
			Actual:      got,
		})
		fmt.Fprintf(r.out, "✗ Test %d: %s\n", i+1, c.Description)
		fmt.Fprintf(r.out, "  Input: %s\n", preview(input))
		fmt.Fprintf(r.out, "  Expected: %s\n", want)
		fmt.Fprintf(r.out, "  Got: %s\n", got)
	}

	fmt.Fprintf(r.out, "\n%d/%d tests passed\n", report.Passed, report.Total)
	return report, nil
}

// RunAll runs the suites in order and logs one summary record per run.
func (r *Runner) RunAll(ctx context.Context, suites []Suite) (Summary, error) {
	summary := Summary{RunID: uuid.New()}
	start := time.Now()

	for i, s := range suites {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		report, err := r.Run(ctx, s)
		if err != nil {
			return summary, fmt.Errorf("suite %s: %w", s.Name, err)
		}
		summary.Reports = append(summary.Reports, report)

		if !report.OK() {
			r.log.WarnContext(ctx, "fixture suite failed",
				slog.String("run_id", summary.RunID.String()),
				slog.String("suite", report.Suite),
				slog.Int("failed", report.Total-report.Passed),
			)
		}
	}

	r.log.InfoContext(ctx, "fixture run finished",
		slog.String("run_id", summary.RunID.String()),
		slog.Int("suites", len(summary.Reports)),
		slog.Int("passed", summary.Passed()),
		slog.Int("total", summary.Total()),
		logger.Duration(time.Since(start)),
	)
	return summary, nil
}

// checker returns a function producing the expected and actual result of a case.
func (r *Runner) checker(s Suite) (func(c Case, input string) (string, string), error) {
	if s.Transform != "" {
		fn, ok := Transforms[s.Transform]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, s.Transform)
		}
		return func(c Case, input string) (string, string) {
			want := ""
			if c.Output != nil {
				want = *c.Output
			}
			return fmt.Sprintf("%q", want), fmt.Sprintf("%q", fn(input))
		}, nil
	}

	now := r.clock
	if pinned, ok := s.Clock(); ok {
		now = func() time.Time { return pinned }
	}

	fn, ok := validator.NewRegistry(validator.WithClock(now)).Lookup(s.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", validator.ErrUnknownField, s.Field)
	}
	return func(c Case, input string) (string, string) {
		return c.Want().String(), fn(input).String()
	}, nil
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLength {
		return fmt.Sprintf("%q", s)
	}
	r := []rune(s)
	return fmt.Sprintf("%q... (%d characters)", string(r[:previewLength]), len(r))
}
