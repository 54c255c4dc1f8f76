package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "videos", cfg.Dirs.Videos)
	assert.Equal(t, "audios", cfg.Dirs.Audios)
	assert.Equal(t, "trancricoes", cfg.Dirs.Transcripts)
	assert.Equal(t, "resposta", cfg.Dirs.Results)
	assert.Equal(t, []string{".mp4", ".mov", ".mkv"}, cfg.Media.VideoExtensions)
	assert.Equal(t, "wav", cfg.Media.AudioFormat)
	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
	assert.Equal(t, ProviderOpenAI, cfg.Evaluation.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Evaluation.Model)
	assert.InDelta(t, 0.2, cfg.Evaluation.Temperature, 1e-6)
	assert.Equal(t, FormatFreeform, cfg.Evaluation.OutputFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "gemini gets its own default model",
			config: Config{Evaluation: EvaluationConfig{Provider: ProviderGemini}},
		},
		{
			name:    "unknown provider",
			config:  Config{Evaluation: EvaluationConfig{Provider: "llama"}},
			wantErr: true,
		},
		{
			name:    "unknown output format",
			config:  Config{Evaluation: EvaluationConfig{OutputFormat: "json"}},
			wantErr: true,
		},
		{
			name:    "temperature out of range",
			config:  Config{Evaluation: EvaluationConfig{Temperature: 3}},
			wantErr: true,
		},
		{
			name:    "negative chunk duration",
			config:  Config{Transcription: TranscriptionConfig{ChunkDuration: Duration(-time.Second)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVideoExtensionsNormalised(t *testing.T) {
	cfg := Config{Media: MediaConfig{VideoExtensions: []string{"MP4", " .Webm"}}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{".mp4", ".webm"}, cfg.Media.VideoExtensions)
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "avaliador.yaml")
	content := `
base_dir: /srv/cefs
dirs:
  results: saida
transcription:
  language: pt
  chunk_duration: 10m
evaluation:
  output_format: strict
  temperature: 0.1
rubric:
  path: barema.pdf
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/cefs", cfg.BaseDir)
	assert.Equal(t, filepath.Join("/srv/cefs", "saida"), cfg.Path(cfg.Dirs.Results))
	assert.Equal(t, filepath.Join("/srv/cefs", "videos"), cfg.Path(cfg.Dirs.Videos))
	assert.Equal(t, 10*time.Minute, cfg.Transcription.ChunkDuration.Std())
	assert.Equal(t, FormatStrict, cfg.Evaluation.OutputFormat)
	assert.InDelta(t, 0.1, cfg.Evaluation.Temperature, 1e-6)
	assert.Equal(t, filepath.Join("/srv/cefs", "barema.pdf"), cfg.RubricPath())
	assert.Equal(t, "sk-test", cfg.Credentials.OpenAIKey)
	assert.NoError(t, cfg.ValidateCredentials())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Empty(t, cfg.RubricPath())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transcription:\n  chunk_duration: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCredentials(t *testing.T) {
	cfg := Config{Evaluation: EvaluationConfig{Provider: ProviderGemini}}
	require.NoError(t, cfg.Validate())

	assert.Error(t, cfg.ValidateCredentials())

	cfg.Credentials.OpenAIKey = "sk"
	assert.Error(t, cfg.ValidateCredentials())

	cfg.Credentials.GeminiKey = "g"
	assert.NoError(t, cfg.ValidateCredentials())
}

func TestDurationAcceptsSeconds(t *testing.T) {
	cases := []struct {
		yaml string
		want time.Duration
	}{
		{"chunk_duration: 600", 10 * time.Minute},
		{"chunk_duration: 90s", 90 * time.Second},
		{`chunk_duration: "5m"`, 5 * time.Minute},
		{"chunk_duration: 0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.yaml, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "avaliador.yaml")
			require.NoError(t, os.WriteFile(path, []byte("transcription:\n  "+tc.yaml+"\n"), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Transcription.ChunkDuration.Std())
		})
	}
}
