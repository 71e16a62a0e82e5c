package fixture_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/carelink/pkg/fixture"
	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/validator"
)

func TestRunner_DefaultSuitesPass(t *testing.T) {
	t.Parallel()

	suites, err := fixture.Default()
	require.NoError(t, err)

	runner := fixture.NewRunner()
	for _, s := range suites {
		t.Run(s.Name, func(t *testing.T) {
			report, err := runner.Run(context.Background(), s)
			require.NoError(t, err)
			for _, f := range report.Failures {
				t.Errorf("case %d %q: input %q expected %s got %s", f.Index, f.Description, f.Input, f.Expected, f.Actual)
			}
			assert.True(t, report.OK())
			assert.Equal(t, len(s.Cases), report.Total)
		})
	}
}

func TestRunner_Output(t *testing.T) {
	t.Parallel()

	s := fixture.Suite{
		Name:  "phone",
		Field: validator.FieldPhone,
		Cases: []fixture.Case{
			{Description: "Valid: 10 digits", Input: "1234567890"},
			{Description: "Wrong expectation", Input: "123", Expected: ptr("Phone number is required")},
		},
	}

	var out bytes.Buffer
	report, err := fixture.NewRunner(fixture.WithOutput(&out)).Run(context.Background(), s)
	require.NoError(t, err)

	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 2, report.Failures[0].Index)
	assert.Equal(t, "invalid: Phone number is required", report.Failures[0].Expected)
	assert.Equal(t, "invalid: Phone number must be at least 10 digits", report.Failures[0].Actual)

	got := out.String()
	assert.Contains(t, got, "✓ Test 1: Valid: 10 digits\n")
	assert.Contains(t, got, "✗ Test 2: Wrong expectation\n")
	assert.Contains(t, got, "  Input: \"123\"\n")
	assert.Contains(t, got, "  Expected: invalid: Phone number is required\n")
	assert.Contains(t, got, "  Got: invalid: Phone number must be at least 10 digits\n")
	assert.Contains(t, got, "\n1/2 tests passed\n")
}

func TestRunner_LongInputPreview(t *testing.T) {
	t.Parallel()

	s := fixture.Suite{
		Name:  "bio",
		Field: validator.FieldBio,
		Cases: []fixture.Case{{
			Description: "expects the wrong thing",
			Repeat:      &fixture.Repeat{Text: "A", Times: 1001},
		}},
	}

	var out bytes.Buffer
	_, err := fixture.NewRunner(fixture.WithOutput(&out)).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "... (1001 characters)")
}

func TestRunner_Transform(t *testing.T) {
	t.Parallel()

	s := fixture.Suite{
		Name:      "caps",
		Transform: "capitalize_words",
		Cases: []fixture.Case{
			{Description: "ok", Input: "heart surgeon", Output: ptr("Heart Surgeon")},
			{Description: "wrong", Input: "o'brien", Output: ptr("O'Brien")},
		},
	}

	report, err := fixture.NewRunner().Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, `"O'Brien"`, report.Failures[0].Expected)
	assert.Equal(t, `"O'brien"`, report.Failures[0].Actual)
}

func TestRunner_Clock(t *testing.T) {
	t.Parallel()

	s := fixture.Suite{
		Name:  "dob",
		Field: validator.FieldDoctorDateOfBirth,
		Cases: []fixture.Case{{Description: "exactly 25", Input: "2000-11-13"}},
	}

	t.Run("runner clock", func(t *testing.T) {
		clock := func() time.Time { return time.Date(2025, time.November, 13, 9, 0, 0, 0, time.UTC) }
		report, err := fixture.NewRunner(fixture.WithClock(clock)).Run(context.Background(), s)
		require.NoError(t, err)
		assert.True(t, report.OK())
	})

	t.Run("pinned now wins over runner clock", func(t *testing.T) {
		pinned := s
		pinned.Now = "2025-11-13"
		clock := func() time.Time { return time.Date(2025, time.November, 12, 9, 0, 0, 0, time.UTC) }
		report, err := fixture.NewRunner(fixture.WithClock(clock)).Run(context.Background(), pinned)
		require.NoError(t, err)
		assert.True(t, report.OK())
	})
}

func TestRunner_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown field", func(t *testing.T) {
		s := fixture.Suite{Name: "x", Field: "shoe_size", Cases: []fixture.Case{{Description: "d"}}}
		_, err := fixture.NewRunner().Run(context.Background(), s)
		assert.ErrorIs(t, err, validator.ErrUnknownField)
	})

	t.Run("unknown transform", func(t *testing.T) {
		s := fixture.Suite{Name: "x", Transform: "shout", Cases: []fixture.Case{{Description: "d"}}}
		_, err := fixture.NewRunner().Run(context.Background(), s)
		assert.ErrorIs(t, err, fixture.ErrUnknownTransform)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := fixture.Suite{Name: "x", Field: validator.FieldGender, Cases: []fixture.Case{{Description: "d", Input: "Male"}}}
		_, err := fixture.NewRunner().Run(ctx, s)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunner_RunAll(t *testing.T) {
	t.Parallel()

	suites := []fixture.Suite{
		{Name: "gender", Field: validator.FieldGender, Cases: []fixture.Case{
			{Description: "valid", Input: "Male"},
		}},
		{Name: "phone", Field: validator.FieldPhone, Cases: []fixture.Case{
			{Description: "valid", Input: "1234567890"},
			{Description: "wrong", Input: "1234567890", Expected: ptr("Phone number is required")},
		}},
	}

	var out, logs bytes.Buffer
	runner := fixture.NewRunner(
		fixture.WithOutput(&out),
		fixture.WithLogger(logger.New(logger.WithOutput(&logs))),
	)

	summary, err := runner.RunAll(context.Background(), suites)
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, [16]byte(summary.RunID))
	assert.Equal(t, 2, summary.Passed())
	assert.Equal(t, 3, summary.Total())
	assert.False(t, summary.OK())
	require.Len(t, summary.Reports, 2)
	assert.True(t, summary.Reports[0].OK())

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var warn, info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &warn))
	require.NoError(t, json.Unmarshal(lines[1], &info))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "phone", warn["suite"])
	assert.Equal(t, "fixture run finished", info["msg"])
	assert.Equal(t, summary.RunID.String(), info["run_id"])
	assert.EqualValues(t, 3, info["total"])
}
