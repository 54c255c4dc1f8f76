package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
	"github.com/HugeFrog24/cefs-video-grader/internal/evaluate"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
	"github.com/HugeFrog24/cefs-video-grader/internal/media"
	"github.com/HugeFrog24/cefs-video-grader/internal/metrics"
	"github.com/HugeFrog24/cefs-video-grader/internal/prompt"
	"github.com/HugeFrog24/cefs-video-grader/internal/rubric"
	"github.com/HugeFrog24/cefs-video-grader/internal/store"
	"github.com/HugeFrog24/cefs-video-grader/internal/transcribe"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
	"github.com/HugeFrog24/cefs-video-grader/pkg/executor"
)

// app holds what every command needs; the pipeline is only built on demand
// since it requires credentials.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	layout  store.Layout
	videos  *store.DirVideos
	results *store.DirResults
}

func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	layout := store.NewLayout(cfg)
	return &app{
		cfg:     cfg,
		log:     log,
		layout:  layout,
		videos:  store.NewDirVideos(layout.Videos, cfg.Media.VideoExtensions),
		results: store.NewDirResults(layout.Results),
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

// orchestrator wires the full pipeline. reg may be nil.
func (a *app) orchestrator(ctx context.Context, reg prometheus.Registerer, observers ...workflow.Observer) (*workflow.Orchestrator, error) {
	if err := a.cfg.ValidateCredentials(); err != nil {
		return nil, err
	}
	if err := a.layout.Ensure(); err != nil {
		return nil, err
	}

	exec := executor.New()
	transcriber, err := transcribe.NewWhisper(
		a.cfg.Credentials.OpenAIKey,
		a.cfg.Transcription,
		media.NewSplitter(exec, a.cfg.Media),
		a.log.With("component", "transcribe"),
	)
	if err != nil {
		return nil, err
	}

	evaluator, err := evaluate.New(ctx, a.cfg, a.log.With("component", "evaluate"))
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "Evaluating with %s (%s), rubric %s", evaluator.Model(), a.cfg.Evaluation.Provider, prompt.RubricVersion)

	format, err := prompt.ParseFormat(a.cfg.Evaluation.OutputFormat)
	if err != nil {
		return nil, err
	}

	if reg != nil {
		observers = append(observers, metrics.NewRecorder(reg))
	}

	return workflow.New(workflow.Deps{
		Layout:        a.layout,
		Extractor:     media.NewFFmpeg(exec, a.cfg.Media),
		Transcriber:   transcriber,
		ContextLoader: rubric.NewLoader(a.log.With("component", "rubric")),
		RubricPath:    a.cfg.RubricPath(),
		Builder:       prompt.NewBuilder(format),
		Evaluator:     evaluator,
		Results:       a.results,
		Observer:      workflow.Observers(observers),
		Logger:        a.log.With("component", "workflow"),
	}), nil
}

// progress prints the stage messages shown to the evaluator.
type progress struct {
	out io.Writer
}

func (p progress) OnRunStart(r *workflow.Report) {
	fmt.Fprintf(p.out, "Avaliando %s...\n", r.Identity.VideoStem)
}

func (p progress) OnStageStart(_ *workflow.Report, stage workflow.State) {
	fmt.Fprintln(p.out, stage.Message())
}

func (p progress) OnStageDone(_ *workflow.Report, stage workflow.State, dur time.Duration, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "  falhou após %s\n", dur.Round(time.Millisecond))
	}
}

func (p progress) OnRunDone(r *workflow.Report) {
	fmt.Fprintln(p.out, r.State.Message())
}
