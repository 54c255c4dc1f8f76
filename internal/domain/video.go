package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// VideoAsset is a presentation recording found in the videos directory.
// The system never modifies it.
type VideoAsset struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Format  string    `json:"format"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Stem is the file name without its extension.
func (v VideoAsset) Stem() string {
	return Stem(v.Name)
}

// Stem strips directory and extension from a file name.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
