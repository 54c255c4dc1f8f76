package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultFile is read when no --config flag is given. A missing file is fine.
const DefaultFile = "avaliador.yaml"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	FormatFreeform = "freeform"
	FormatStrict   = "strict"
)

type Config struct {
	BaseDir       string              `yaml:"base_dir"`
	Dirs          DirsConfig          `yaml:"dirs"`
	Media         MediaConfig         `yaml:"media"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Evaluation    EvaluationConfig    `yaml:"evaluation"`
	Rubric        RubricConfig        `yaml:"rubric"`
	Server        ServerConfig        `yaml:"server"`
	Logging       LoggingConfig       `yaml:"logging"`

	// Credentials never come from the YAML file.
	Credentials Credentials `yaml:"-"`
}

type DirsConfig struct {
	Videos      string `yaml:"videos"`
	Audios      string `yaml:"audios"`
	Transcripts string `yaml:"transcripts"`
	Results     string `yaml:"results"`
}

type MediaConfig struct {
	FFmpegPath      string   `yaml:"ffmpeg"`
	FFprobePath     string   `yaml:"ffprobe"`
	AudioFormat     string   `yaml:"audio_format"`
	AudioCodec      string   `yaml:"audio_codec"`
	SampleRate      int      `yaml:"sample_rate"`
	Channels        int      `yaml:"channels"`
	VideoExtensions []string `yaml:"video_extensions"`
}

type TranscriptionConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	// ChunkDuration splits long audio before upload. Zero disables splitting.
	ChunkDuration Duration `yaml:"chunk_duration"`
}

type EvaluationConfig struct {
	Provider     string  `yaml:"provider"`
	Model        string  `yaml:"model"`
	Temperature  float32 `yaml:"temperature"`
	OutputFormat string  `yaml:"output_format"`
}

type RubricConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Credentials are read once from the environment at start-up.
type Credentials struct {
	OpenAIKey string `envconfig:"OPENAI_API_KEY"`
	GeminiKey string `envconfig:"GEMINI_API_KEY"`
}

// Validate fills defaults and rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	if c.Dirs.Videos == "" {
		c.Dirs.Videos = "videos"
	}
	if c.Dirs.Audios == "" {
		c.Dirs.Audios = "audios"
	}
	if c.Dirs.Transcripts == "" {
		c.Dirs.Transcripts = "trancricoes"
	}
	if c.Dirs.Results == "" {
		c.Dirs.Results = "resposta"
	}

	if c.Media.FFmpegPath == "" {
		c.Media.FFmpegPath = "ffmpeg"
	}
	if c.Media.FFprobePath == "" {
		c.Media.FFprobePath = "ffprobe"
	}
	if c.Media.AudioFormat == "" {
		c.Media.AudioFormat = "wav"
	}
	c.Media.AudioFormat = strings.TrimPrefix(strings.ToLower(c.Media.AudioFormat), ".")
	if c.Media.AudioCodec == "" {
		c.Media.AudioCodec = "pcm_s16le"
	}
	if c.Media.SampleRate == 0 {
		c.Media.SampleRate = 16000
	}
	if c.Media.Channels == 0 {
		c.Media.Channels = 1
	}
	if len(c.Media.VideoExtensions) == 0 {
		c.Media.VideoExtensions = []string{".mp4", ".mov", ".mkv"}
	}
	for i, ext := range c.Media.VideoExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Media.VideoExtensions[i] = ext
	}
	if c.Media.SampleRate < 0 || c.Media.Channels < 0 {
		return fmt.Errorf("media.sample_rate and media.channels must be positive")
	}

	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "pt"
	}
	if c.Transcription.ChunkDuration < 0 {
		return fmt.Errorf("transcription.chunk_duration must not be negative")
	}

	if c.Evaluation.Provider == "" {
		c.Evaluation.Provider = ProviderOpenAI
	}
	switch c.Evaluation.Provider {
	case ProviderOpenAI:
		if c.Evaluation.Model == "" {
			c.Evaluation.Model = "gpt-4o-mini"
		}
	case ProviderGemini:
		if c.Evaluation.Model == "" {
			c.Evaluation.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("evaluation.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Evaluation.Provider)
	}
	if c.Evaluation.Temperature == 0 {
		c.Evaluation.Temperature = 0.2
	}
	if c.Evaluation.Temperature < 0 || c.Evaluation.Temperature > 2 {
		return fmt.Errorf("evaluation.temperature must be within [0, 2], got %v", c.Evaluation.Temperature)
	}
	if c.Evaluation.OutputFormat == "" {
		c.Evaluation.OutputFormat = FormatFreeform
	}
	if c.Evaluation.OutputFormat != FormatFreeform && c.Evaluation.OutputFormat != FormatStrict {
		return fmt.Errorf("evaluation.output_format must be %q or %q, got %q", FormatFreeform, FormatStrict, c.Evaluation.OutputFormat)
	}

	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}

// ValidateCredentials checks the keys needed to run the pipeline. Listing
// videos or history works without them.
func (c *Config) ValidateCredentials() error {
	if c.Credentials.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	if c.Evaluation.Provider == ProviderGemini && c.Credentials.GeminiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

// Path resolves one of the configured directories against BaseDir.
func (c *Config) Path(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.BaseDir, dir)
}

// RubricPath resolves rubric.path against BaseDir, or returns "" if unset.
func (c *Config) RubricPath() string {
	if c.Rubric.Path == "" {
		return ""
	}
	return c.Path(c.Rubric.Path)
}
