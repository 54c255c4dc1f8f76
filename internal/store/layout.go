// Package store owns the fixed directory tree: videos are discovered there,
// per-run artifacts and results are written there.
package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

// Layout resolves the four working directories.
type Layout struct {
	Videos      string
	Audios      string
	Transcripts string
	Results     string
}

func NewLayout(cfg *config.Config) Layout {
	return Layout{
		Videos:      cfg.Path(cfg.Dirs.Videos),
		Audios:      cfg.Path(cfg.Dirs.Audios),
		Transcripts: cfg.Path(cfg.Dirs.Transcripts),
		Results:     cfg.Path(cfg.Dirs.Results),
	}
}

// Ensure creates every directory that does not exist yet.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.Videos, l.Audios, l.Transcripts, l.Results} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.Wrap(domain.KindStorageWrite, "create directory", errors.Wrapf(err, "create directory %s", dir))
		}
	}
	return nil
}

// VideoPath is the path of a video picked by file name.
func (l Layout) VideoPath(name string) string {
	return filepath.Join(l.Videos, filepath.Base(name))
}

// AudioPath is {audios}/{base}.{ext}.
func (l Layout) AudioPath(id domain.RunIdentity, ext string) string {
	return filepath.Join(l.Audios, id.BaseName()+"."+ext)
}

// TranscriptPath is {transcripts}/{base}.txt.
func (l Layout) TranscriptPath(id domain.RunIdentity) string {
	return filepath.Join(l.Transcripts, id.BaseName()+".txt")
}
