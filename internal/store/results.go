package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

const (
	// ResultExt is the extension history listing is based on.
	ResultExt = ".txt"
	// MarkdownExt marks the markdown-flavoured copy of each result.
	MarkdownExt = ".md"
)

// ResultStore persists verdicts and serves the history.
type ResultStore interface {
	Save(text, baseName string) ([]string, error)
	List() ([]domain.HistoryEntry, error)
	Load(name string) (string, error)
}

// DirResults keeps results as plain files: {base}.txt and {base}.md with
// identical content. Writes are not atomic.
type DirResults struct {
	dir string
}

func NewDirResults(dir string) *DirResults {
	return &DirResults{dir: dir}
}

func (d *DirResults) Dir() string { return d.dir }

// Save writes text to both sibling files and returns their paths, .txt first.
func (d *DirResults) Save(text, baseName string) ([]string, error) {
	const op = "save result"

	if err := validName(baseName); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, domain.Wrap(domain.KindStorageWrite, op, errors.Wrapf(err, "create %s", d.dir))
	}

	txt := filepath.Join(d.dir, baseName+ResultExt)
	md := filepath.Join(d.dir, baseName+MarkdownExt)
	// History lists .txt files, so it goes last: a listed result always has its .md.
	for _, p := range []string{md, txt} {
		if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
			return nil, domain.Wrap(domain.KindStorageWrite, op, errors.Wrapf(err, "write %s", p))
		}
	}
	return []string{txt, md}, nil
}

// List returns one entry per .txt result, most recently modified first.
func (d *DirResults) List() ([]domain.HistoryEntry, error) {
	entries, err := os.ReadDir(d.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "list results in %s", d.dir)
	}

	var history []domain.HistoryEntry
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ResultExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		history = append(history, domain.HistoryEntry{
			Name:    strings.TrimSuffix(e.Name(), ResultExt),
			File:    e.Name(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(history, func(i, j int) bool {
		if history[i].ModTime.Equal(history[j].ModTime) {
			return history[i].Name > history[j].Name
		}
		return history[i].ModTime.After(history[j].ModTime)
	})
	return history, nil
}

// Load reads a result by base name. A trailing .txt or .md is accepted.
func (d *DirResults) Load(name string) (string, error) {
	data, err := os.ReadFile(d.path(name, ResultExt))
	if errors.Is(err, fs.ErrNotExist) {
		return "", &domain.Error{Kind: domain.KindStorageNotFound, Op: "load result", Err: errors.Wrapf(domain.ErrNotFound, "result %s", name)}
	}
	if err != nil {
		return "", errors.Wrapf(err, "read result %s", name)
	}
	return string(data), nil
}

// Path returns the file holding name with the given extension, or a
// storage_not_found error.
func (d *DirResults) Path(name, ext string) (string, error) {
	p := d.path(name, ext)
	if _, err := os.Stat(p); err != nil {
		return "", &domain.Error{Kind: domain.KindStorageNotFound, Op: "result path", Err: errors.Wrapf(domain.ErrNotFound, "result %s%s", trimResultExt(name), ext)}
	}
	return p, nil
}

func (d *DirResults) path(name, ext string) string {
	return filepath.Join(d.dir, filepath.Base(trimResultExt(name))+ext)
}

func trimResultExt(name string) string {
	switch filepath.Ext(name) {
	case ResultExt, MarkdownExt:
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return domain.Errorf(domain.KindStorageWrite, "save result", "invalid result name %q", name)
	}
	return nil
}
