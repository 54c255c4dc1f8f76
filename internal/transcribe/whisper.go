package transcribe

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

// Splitter cuts audio into chunks; media.Splitter implements it.
type Splitter interface {
	Split(ctx context.Context, audioFile, dir string, maxDuration time.Duration) ([]string, error)
}

// Whisper transcribes audio with the OpenAI transcription endpoint.
type Whisper struct {
	client   *openai.Client
	cfg      config.TranscriptionConfig
	splitter Splitter
	checker  *LanguageCheck
	logger   logger.Logger
}

// NewWhisper builds a transcriber against the public OpenAI API.
func NewWhisper(apiKey string, cfg config.TranscriptionConfig, splitter Splitter, log logger.Logger) (*Whisper, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	return NewWhisperWithClient(openai.NewClient(apiKey), cfg, splitter, log), nil
}

// NewWhisperWithClient uses an already configured client, e.g. one pointed at
// a different base URL.
func NewWhisperWithClient(client *openai.Client, cfg config.TranscriptionConfig, splitter Splitter, log logger.Logger) *Whisper {
	return &Whisper{
		client:   client,
		cfg:      cfg,
		splitter: splitter,
		checker:  NewLanguageCheck(),
		logger:   log,
	}
}

// Transcribe returns the plain-text transcript of audioFile. Nothing is
// retried; any service error is a transcription_failure.
func (w *Whisper) Transcribe(ctx context.Context, audioFile string) (string, error) {
	const op = "transcribe"

	if _, err := os.Stat(audioFile); err != nil {
		return "", domain.Wrap(domain.KindTranscription, op, errors.Wrapf(err, "open %s", audioFile))
	}

	chunks := []string{audioFile}
	if w.splitter != nil && w.cfg.ChunkDuration > 0 {
		tmpDir, err := os.MkdirTemp("", "avaliador-chunks-*")
		if err != nil {
			return "", domain.Wrap(domain.KindTranscription, op, errors.Wrap(err, "create chunk dir"))
		}
		defer func() {
			if err := os.RemoveAll(tmpDir); err != nil {
				w.logger.Warn(ctx, "Failed to remove chunk dir %s: %v", tmpDir, err)
			}
		}()

		chunks, err = w.splitter.Split(ctx, audioFile, tmpDir, w.cfg.ChunkDuration.Std())
		if err != nil {
			return "", domain.Wrap(domain.KindTranscription, op, errors.Wrap(err, "split audio"))
		}
		if len(chunks) > 1 {
			w.logger.Info(ctx, "Audio split into %d chunks of up to %s", len(chunks), w.cfg.ChunkDuration.Std())
		}
	}

	var full strings.Builder
	for i, chunk := range chunks {
		resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    w.cfg.Model,
			FilePath: chunk,
			Language: w.cfg.Language,
		})
		if err != nil {
			return "", domain.Wrap(domain.KindTranscription, op, errors.Wrapf(err, "chunk %d of %d", i+1, len(chunks)))
		}
		if full.Len() > 0 {
			full.WriteString(" ")
		}
		full.WriteString(strings.TrimSpace(resp.Text))
	}

	transcript := full.String()
	w.checkLanguage(ctx, transcript)
	return transcript, nil
}

func (w *Whisper) checkLanguage(ctx context.Context, transcript string) {
	detected, ok := w.checker.Detect(transcript)
	if !ok {
		w.logger.Debug(ctx, "Transcript language could not be detected")
		return
	}
	w.logger.Info(ctx, "Detected transcription language: %s", detected)
	if w.cfg.Language != "" && !strings.EqualFold(detected, w.cfg.Language) {
		w.logger.Warn(ctx, "Transcript language %s differs from configured %s", detected, w.cfg.Language)
	}
}
