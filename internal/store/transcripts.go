package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

// WriteTranscript stores the transcript of a run for later inspection.
func WriteTranscript(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Wrap(domain.KindStorageWrite, "save transcript", errors.Wrapf(err, "create %s", filepath.Dir(path)))
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return domain.Wrap(domain.KindStorageWrite, "save transcript", errors.Wrapf(err, "write %s", path))
	}
	return nil
}
