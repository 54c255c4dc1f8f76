package executor

import "context"

// Executor runs external tools such as ffmpeg and ffprobe.
type Executor interface {
	// Execute runs name with args and returns its stdout. On failure the
	// returned *ExitError carries the captured stderr.
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
