package workflow

import (
	"context"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

type MockAudioExtractor struct {
	ExtractAudioFunc func(ctx context.Context, videoFile, audioFile string) (string, error)
	Ext              string
}

func (m *MockAudioExtractor) ExtractAudio(ctx context.Context, videoFile, audioFile string) (string, error) {
	return m.ExtractAudioFunc(ctx, videoFile, audioFile)
}

func (m *MockAudioExtractor) Extension() string {
	if m.Ext == "" {
		return "wav"
	}
	return m.Ext
}

type MockAudioTranscriber struct {
	TranscribeFunc func(ctx context.Context, audioFile string) (string, error)
}

func (m *MockAudioTranscriber) Transcribe(ctx context.Context, audioFile string) (string, error) {
	return m.TranscribeFunc(ctx, audioFile)
}

type MockContextLoader struct {
	LoadFunc func(ctx context.Context, path string) (string, bool, error)
}

func (m *MockContextLoader) Load(ctx context.Context, path string) (string, bool, error) {
	return m.LoadFunc(ctx, path)
}

type MockEvaluator struct {
	EvaluateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockEvaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	return m.EvaluateFunc(ctx, prompt)
}

type MockPromptBuilder struct {
	BuildFunc func(req domain.EvaluationRequest) (string, error)
}

func (m *MockPromptBuilder) Build(req domain.EvaluationRequest) (string, error) {
	return m.BuildFunc(req)
}
