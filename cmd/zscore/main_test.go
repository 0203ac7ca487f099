package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"zscorecalc/app"
	"zscorecalc/internal/config"
	apperrors "zscorecalc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Report: config.ReportConfig{DefaultThreshold: "3.0"}}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testConfig())
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_FromFlag(t *testing.T) {
	out, err := execute(t, "", "calc", "--data", "1,2,3,4,5,100")
	require.NoError(t, err)
	assert.Contains(t, out, "ZC + A:    \t0")
}

func TestCalc_FromStdin(t *testing.T) {
	out, err := execute(t, "1\n2\n3\n", "calc", "-t", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "ZP - B:")
}

func TestCalc_EmptyInputPrintsNothing(t *testing.T) {
	out, err := execute(t, "nothing numeric", "calc")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCalc_BadThreshold(t *testing.T) {
	out, err := execute(t, "", "calc", "--data", "1,2,3", "--threshold", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, app.ErrThreshold))
	assert.Equal(t, 2, exitCode(err))
	assert.Empty(t, out)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestCalc_StdinReadFailure(t *testing.T) {
	cmd := newRootCmd(testConfig())
	cmd.SetIn(failingReader{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"calc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternalError, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "failed to read data after 0 bytes: device gone")
	assert.Equal(t, 1, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"threshold", app.ErrThreshold, 2},
		{"wrapped threshold", apperrors.Wrap(app.ErrThreshold, "calc"), 2},
		{"invalid input", apperrors.InvalidInput("bad"), 2},
		{"config", apperrors.ConfigInvalid("ZSCORE_THRESHOLD"), 2},
		{"internal", apperrors.Wrap(errors.New("boom"), "read"), 1},
		{"foreign", errors.New("unknown flag"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestCalc_Summary(t *testing.T) {
	out, err := execute(t, "", "calc", "--data", "1,2,3,4,5,6,7,8", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "iqr outliers")
}

func TestCalc_SummarySkippedForShortSeries(t *testing.T) {
	out, err := execute(t, "", "calc", "--data", "1,2", "--summary")
	require.NoError(t, err)
	assert.NotContains(t, out, "iqr outliers")
}

func TestShell(t *testing.T) {
	out, err := execute(t, "1,2,3\n:calc\n:quit\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "ZC + A:")
}
