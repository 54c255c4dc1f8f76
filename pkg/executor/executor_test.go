package executor

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	out, err := New().Execute(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecuteFailureCarriesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	_, err := New().Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "broken", exitErr.Stderr)
	assert.Contains(t, err.Error(), "stderr: broken")

	var osExit *exec.ExitError
	assert.True(t, errors.As(err, &osExit))
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Empty(t, exitErr.Stderr)
}

func TestFunc(t *testing.T) {
	var got []string
	f := Func(func(ctx context.Context, name string, args ...string) (string, error) {
		got = append([]string{name}, args...)
		return "ok", nil
	})
	out, err := f.Execute(context.Background(), "ffmpeg", "-i", "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []string{"ffmpeg", "-i", "x"}, got)
}
