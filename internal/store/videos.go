package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

// VideoRepository lists the videos available for grading. The file system is
// the source of truth and is scanned on every call.
type VideoRepository interface {
	List() ([]domain.VideoAsset, error)
	Get(name string) (domain.VideoAsset, error)
}

// DirVideos lists video files of the accepted formats in one directory.
type DirVideos struct {
	dir        string
	extensions map[string]bool
}

func NewDirVideos(dir string, extensions []string) *DirVideos {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &DirVideos{dir: dir, extensions: exts}
}

// List returns the videos sorted by name.
func (d *DirVideos) List() ([]domain.VideoAsset, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list videos in %s", d.dir)
	}

	var videos []domain.VideoAsset
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		v, ok := d.asset(e)
		if ok {
			videos = append(videos, v)
		}
	}

	sort.Slice(videos, func(i, j int) bool { return videos[i].Name < videos[j].Name })
	return videos, nil
}

// Get returns a single video by file name.
func (d *DirVideos) Get(name string) (domain.VideoAsset, error) {
	name = filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(name))
	if !d.extensions[ext] {
		return domain.VideoAsset{}, domain.Errorf(domain.KindInvalidInput, "get video", "unsupported video format %q", ext)
	}

	info, err := os.Stat(filepath.Join(d.dir, name))
	if err != nil || info.IsDir() {
		return domain.VideoAsset{}, &domain.Error{Kind: domain.KindStorageNotFound, Op: "get video", Err: errors.Wrapf(domain.ErrNotFound, "video %s", name)}
	}
	return d.fromInfo(name, info), nil
}

func (d *DirVideos) asset(e os.DirEntry) (domain.VideoAsset, bool) {
	ext := strings.ToLower(filepath.Ext(e.Name()))
	if !d.extensions[ext] {
		return domain.VideoAsset{}, false
	}
	info, err := e.Info()
	if err != nil {
		return domain.VideoAsset{}, false
	}
	return d.fromInfo(e.Name(), info), true
}

func (d *DirVideos) fromInfo(name string, info os.FileInfo) domain.VideoAsset {
	return domain.VideoAsset{
		Name:    name,
		Path:    filepath.Join(d.dir, name),
		Format:  strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
