package evaluate

import (
	"context"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

// OpenAI scores a prompt with the chat completions endpoint.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

func NewOpenAI(apiKey, model string, temperature float32, log logger.Logger) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	return NewOpenAIWithClient(openai.NewClient(apiKey), model, temperature, log), nil
}

func NewOpenAIWithClient(client *openai.Client, model string, temperature float32, log logger.Logger) *OpenAI {
	return &OpenAI{client: client, model: model, temperature: temperature, logger: log}
}

// Evaluate returns the first choice's content exactly as the model produced it.
func (e *OpenAI) Evaluate(ctx context.Context, prompt string) (string, error) {
	const op = "evaluate"

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: e.temperature,
	})
	if err != nil {
		return "", domain.Wrap(domain.KindEvaluation, op, errors.Wrap(err, "chat completion"))
	}
	if len(resp.Choices) == 0 {
		return "", domain.Errorf(domain.KindEvaluation, op, "%s returned no choices", e.model)
	}

	e.logger.Debug(ctx, "Usage - Prompt tokens: %d, Completion tokens: %d, Total tokens: %d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}

func (e *OpenAI) Model() string { return e.model }
