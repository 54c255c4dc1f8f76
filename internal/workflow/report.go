package workflow

import (
	"time"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

// Input is what the evaluator picks in the interface.
type Input struct {
	Video      string            `json:"video"`
	Fardamento domain.Fardamento `json:"fardamento"`
	Leitura    domain.Leitura    `json:"leitura"`
}

// StageResult records how one stage ended.
type StageResult struct {
	Stage    State         `json:"stage"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// Report describes one run. Files written by completed stages are listed even
// when a later stage failed; nothing is rolled back.
type Report struct {
	RunID          string                   `json:"run_id"`
	Identity       domain.RunIdentity       `json:"identity"`
	BaseName       string                   `json:"base_name"`
	State          State                    `json:"state"`
	VideoPath      string                   `json:"video_path"`
	AudioPath      string                   `json:"audio_path,omitempty"`
	TranscriptPath string                   `json:"transcript_path,omitempty"`
	ResultPaths    []string                 `json:"result_paths,omitempty"`
	ContextLoaded  bool                     `json:"context_loaded"`
	Result         *domain.EvaluationResult `json:"result,omitempty"`
	Warnings       []string                 `json:"warnings,omitempty"`
	Stages         []StageResult            `json:"stages"`
	Error          string                   `json:"error,omitempty"`
	ErrorKind      domain.Kind              `json:"error_kind,omitempty"`
	StartedAt      time.Time                `json:"started_at"`
	FinishedAt     time.Time                `json:"finished_at"`
}
