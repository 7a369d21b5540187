package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/libreseed/bitarith/pkg/arith"
)

func TestRunDefaultSuite(t *testing.T) {
	suite, err := DefaultSuite()
	require.NoError(t, err)

	report, err := suite.Run(nil)
	require.NoError(t, err)
	for _, f := range report.Failures {
		t.Errorf("unexpected failure: %s", f)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(suite.Multiply)+2*len(suite.Divide)+len(suite.Sqrt), report.Total())
}

func TestRunReportsFailures(t *testing.T) {
	data := `
name: wrong
multiply:
  - {x: 12, y: 10, want: 121}
divide:
  - {x: 30, y: 4, want: 7}
  - {x: 30, y: 4, error: INVALID_ARGUMENT}
sqrt:
  - {x: 70000, want: 264}
`
	suite, err := LoadSuiteFromBytes([]byte(data))
	require.NoError(t, err)

	report, err := suite.Run(nil)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, "wrong", report.Suite)
	assert.Equal(t, 2, report.Passed)

	require.Len(t, report.Failures, 4)
	assert.Equal(t, Failure{Op: "multiply", Case: "12, 10", Want: "121", Got: "120"}, report.Failures[0])
	assert.Equal(t, Failure{Op: "divide_recursive", Case: "30, 4", Want: "INVALID_ARGUMENT", Got: "7"}, report.Failures[1])
	assert.Equal(t, Failure{Op: "divide_iterative", Case: "30, 4", Want: "INVALID_ARGUMENT", Got: "7"}, report.Failures[2])
	assert.Equal(t, Failure{Op: "sqrt", Case: "70000", Want: "264", Got: "INVALID_ARGUMENT"}, report.Failures[3])
	assert.Equal(t, "multiply(12, 10): got 120, want 121", report.Failures[0].String())
}

func TestRunTraced(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tracer := arith.NewTracer(zap.New(core))

	want := int64(5)
	suite := &Suite{Sqrt: []UnaryCase{{X: 25, Want: &want}}}
	report, err := suite.Run(tracer)
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, 1, logs.FilterMessage("sqrt result").Len())
}

func TestRunRejectsCasesWithoutExpectation(t *testing.T) {
	tests := []struct {
		name  string
		suite *Suite
	}{
		{name: "sqrt without want", suite: &Suite{Sqrt: []UnaryCase{{X: 25}}}},
		{name: "multiply without want", suite: &Suite{Multiply: []BinaryCase{{X: 2, Y: 3}}}},
		{name: "divide without want", suite: &Suite{Divide: []BinaryCase{{X: 30, Y: 4}}}},
		{name: "empty suite", suite: &Suite{Name: "empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				report *Report
				err    error
			)
			require.NotPanics(t, func() { report, err = tt.suite.Run(nil) })
			assert.Error(t, err)
			assert.Nil(t, report)
		})
	}
}
