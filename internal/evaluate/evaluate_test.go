package evaluate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = srv.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestOpenAIEvaluate(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "Nota final: 1,6\n"}, "finish_reason": "stop"},
				{"index": 1, "message": {"role": "assistant", "content": "ignored"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`)
	})

	ev := NewOpenAIWithClient(client, "gpt-4o-mini", 0.2, logger.NewNop())
	text, err := ev.Evaluate(context.Background(), "PROMPT")
	require.NoError(t, err)

	assert.Equal(t, "Nota final: 1,6\n", text, "the verdict is returned verbatim")
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.2, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[0].Role)
	assert.Equal(t, "PROMPT", got.Messages[0].Content)
	assert.Equal(t, "gpt-4o-mini", ev.Model())
}

func TestOpenAIEvaluatePassesMalformedOutputThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"<section id=\"nota-final\">1,2"}}]}`)
	})

	text, err := NewOpenAIWithClient(client, "gpt-4o-mini", 0.2, logger.NewNop()).Evaluate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `<section id="nota-final">1,2`, text)
}

func TestOpenAIEvaluateQuotaError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`)
	})

	_, err := NewOpenAIWithClient(client, "gpt-4o-mini", 0.2, logger.NewNop()).Evaluate(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, domain.KindEvaluation, domain.KindOf(err))
}

func TestOpenAIEvaluateNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[]}`)
	})

	_, err := NewOpenAIWithClient(client, "gpt-4o-mini", 0.2, logger.NewNop()).Evaluate(context.Background(), "p")
	assert.Equal(t, domain.KindEvaluation, domain.KindOf(err))
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())

	_, err := New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err, "missing OpenAI key")

	cfg.Credentials.OpenAIKey = "sk"
	ev, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, ev)

	cfg.Evaluation.Provider = config.ProviderGemini
	_, err = New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err, "missing Gemini key")

	cfg.Evaluation.Provider = "other"
	_, err = New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}
