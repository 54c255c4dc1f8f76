package media

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/pkg/executor"
)

// Splitter cuts long audio into fixed-length chunks so each upload stays
// inside the transcription service's size limit.
type Splitter struct {
	exec executor.Executor
	cfg  config.MediaConfig
}

func NewSplitter(exec executor.Executor, cfg config.MediaConfig) *Splitter {
	return &Splitter{exec: exec, cfg: cfg}
}

// Duration asks ffprobe for the length of audioFile.
func (s *Splitter) Duration(ctx context.Context, audioFile string) (time.Duration, error) {
	out, err := s.exec.Execute(ctx, s.cfg.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioFile,
	)
	if err != nil {
		return 0, errors.Wrap(err, "get audio duration")
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse audio duration %q", strings.TrimSpace(out))
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// Split writes chunks of at most maxDuration into dir and returns their paths
// in playback order. Audio shorter than maxDuration is returned as is.
func (s *Splitter) Split(ctx context.Context, audioFile, dir string, maxDuration time.Duration) ([]string, error) {
	if maxDuration <= 0 {
		return []string{audioFile}, nil
	}

	duration, err := s.Duration(ctx, audioFile)
	if err != nil {
		return nil, err
	}
	if duration <= maxDuration {
		return []string{audioFile}, nil
	}

	numChunks := int(math.Ceil(duration.Seconds() / maxDuration.Seconds()))
	stem := strings.TrimSuffix(filepath.Base(audioFile), filepath.Ext(audioFile))

	chunks := make([]string, 0, numChunks)
	for i := 0; i < numChunks; i++ {
		start := time.Duration(i) * maxDuration
		chunkFile := filepath.Join(dir, fmt.Sprintf("%s_chunk_%03d.%s", stem, i, s.cfg.AudioFormat))

		_, err := s.exec.Execute(ctx, s.cfg.FFmpegPath,
			"-y",
			"-i", audioFile,
			"-ss", fmt.Sprintf("%f", start.Seconds()),
			"-t", fmt.Sprintf("%f", maxDuration.Seconds()),
			"-acodec", s.cfg.AudioCodec,
			"-ar", strconv.Itoa(s.cfg.SampleRate),
			"-ac", strconv.Itoa(s.cfg.Channels),
			chunkFile,
		)
		if err != nil {
			return chunks, errors.Wrapf(err, "create audio chunk %d", i)
		}
		chunks = append(chunks, chunkFile)
	}

	return chunks, nil
}
