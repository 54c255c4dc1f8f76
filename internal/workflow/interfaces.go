package workflow

import (
	"context"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoFile, audioFile string) (string, error)
	// Extension is the configured audio format, e.g. "wav".
	Extension() string
}

type AudioTranscriber interface {
	Transcribe(ctx context.Context, audioFile string) (string, error)
}

// ContextLoader never fails a run: ok=false means no context, warn says why.
type ContextLoader interface {
	Load(ctx context.Context, path string) (text string, ok bool, warn error)
}

type PromptBuilder interface {
	Build(req domain.EvaluationRequest) (string, error)
}

type Evaluator interface {
	Evaluate(ctx context.Context, prompt string) (string, error)
}

type ResultSaver interface {
	Save(text, baseName string) ([]string, error)
}
