// Package rubric reads the optional reference document (barema, instructions)
// whose text is attached to the evaluation prompt.
package rubric

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

// Loader extracts plain text from a PDF, text or markdown document.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load returns the document text in page order. It never fails the caller:
// when the document cannot be read, ok is false and warn explains why.
// An empty path means no document is configured and yields no warning.
func (l *Loader) Load(ctx context.Context, path string) (text string, ok bool, warn error) {
	if path == "" {
		return "", false, nil
	}

	text, err := l.read(path)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.Errorf("%s contains no extractable text", filepath.Base(path))
	}
	if err != nil {
		warn = domain.Wrap(domain.KindContextLoad, "load rubric", err)
		l.logger.Warn(ctx, "Continuing without rubric context: %v", warn)
		return "", false, warn
	}

	l.logger.Info(ctx, "Rubric context loaded from %s (%d characters)", path, len(text))
	return text, true, nil
}

func (l *Loader) read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".txt", ".md", ".markdown", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(err, "read rubric")
		}
		return string(data), nil
	default:
		return "", errors.Errorf("unsupported rubric document type %q", filepath.Ext(path))
	}
}

// readPDF concatenates the plain text of every page. The pdf package panics
// on some malformed files, so a panic is turned into an error.
func readPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return "", errors.Wrapf(err, "open pdf %s", path)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrapf(err, "read page %d", i)
		}
		if b.Len() > 0 && content != "" {
			b.WriteString("\n")
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
