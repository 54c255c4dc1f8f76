package media

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/pkg/executor"
)

// ffmpeg prints one of these when the input has no audio stream to map.
var noAudioMarkers = []string{
	"does not contain any stream",
	"Output file #0 does not contain any stream",
	"matches no streams",
}

// FFmpeg extracts the audio track of a video with the ffmpeg binary.
type FFmpeg struct {
	exec executor.Executor
	cfg  config.MediaConfig
}

func NewFFmpeg(exec executor.Executor, cfg config.MediaConfig) *FFmpeg {
	return &FFmpeg{exec: exec, cfg: cfg}
}

// Extension is the file extension (without dot) of the audio this extractor writes.
func (f *FFmpeg) Extension() string {
	return f.cfg.AudioFormat
}

// ExtractAudio writes the audio of videoFile to audioFile, overwriting it.
// Media that cannot be opened or has no audio track yields an extraction_failure.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoFile, audioFile string) (string, error) {
	const op = "extract audio"

	info, err := os.Stat(videoFile)
	if err != nil {
		return "", domain.Wrap(domain.KindExtraction, op, errors.Wrapf(err, "open %s", videoFile))
	}
	if info.IsDir() {
		return "", domain.Errorf(domain.KindExtraction, op, "%s is a directory", videoFile)
	}

	_, err = f.exec.Execute(ctx, f.cfg.FFmpegPath, f.args(videoFile, audioFile)...)
	if err != nil {
		if hasNoAudio(err) {
			return "", domain.Errorf(domain.KindExtraction, op, "%s has no audio track", videoFile)
		}
		return "", domain.Wrap(domain.KindExtraction, op, errors.Wrap(err, "ffmpeg"))
	}

	return audioFile, nil
}

func (f *FFmpeg) args(videoFile, audioFile string) []string {
	return []string{
		"-y",
		"-i", videoFile,
		"-vn",
		"-acodec", f.cfg.AudioCodec,
		"-ar", strconv.Itoa(f.cfg.SampleRate),
		"-ac", strconv.Itoa(f.cfg.Channels),
		audioFile,
	}
}

func hasNoAudio(err error) bool {
	var exitErr *executor.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	for _, m := range noAudioMarkers {
		if strings.Contains(exitErr.Stderr, m) {
			return true
		}
	}
	return false
}
