package evaluate

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

// Gemini scores a prompt with the Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, temperature float32, log logger.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return NewGeminiWithClient(client, model, temperature, log), nil
}

// NewGeminiWithClient uses an already configured client, e.g. one pointed at
// a different base URL.
func NewGeminiWithClient(client *genai.Client, model string, temperature float32, log logger.Logger) *Gemini {
	if log == nil {
		log = logger.NewNop()
	}
	return &Gemini{client: client, model: model, temperature: temperature, logger: log}
}

// Evaluate concatenates the text parts of the first candidate.
func (g *Gemini) Evaluate(ctx context.Context, prompt string) (string, error) {
	const op = "evaluate"

	temperature := g.temperature
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", domain.Wrap(domain.KindEvaluation, op, errors.Wrap(err, "generate content"))
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", domain.Errorf(domain.KindEvaluation, op, "empty response from %s", g.model)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func (g *Gemini) Model() string { return g.model }
