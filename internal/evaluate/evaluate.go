// Package evaluate sends an assembled prompt to a completion service and
// returns the verdict text untouched.
package evaluate

import (
	"context"
	"fmt"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

// Evaluator is implemented by every completion provider.
type Evaluator interface {
	Evaluate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// New picks the provider configured in evaluation.provider.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Evaluator, error) {
	ev := cfg.Evaluation
	switch ev.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.Credentials.OpenAIKey, ev.Model, ev.Temperature, log)
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.Credentials.GeminiKey, ev.Model, ev.Temperature, log)
	default:
		return nil, fmt.Errorf("unsupported evaluation provider: %s", ev.Provider)
	}
}
