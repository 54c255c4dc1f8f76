// Package workflow sequences one grading run: extract, transcribe, load
// rubric context, evaluate, persist.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
	"github.com/HugeFrog24/cefs-video-grader/internal/store"
)

// ErrBusy is returned when Run is called while another run is in flight.
var ErrBusy = errors.New("a run is already in progress")

// Deps are the collaborators of an Orchestrator. ContextLoader may be nil,
// and RubricPath may be empty; either disables the context stage.
type Deps struct {
	Layout        store.Layout
	Extractor     AudioExtractor
	Transcriber   AudioTranscriber
	ContextLoader ContextLoader
	RubricPath    string
	Builder       PromptBuilder
	Evaluator     Evaluator
	Results       ResultSaver
	Observer      Observer
	Logger        logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Orchestrator runs the grading pipeline, one run at a time.
type Orchestrator struct {
	deps Deps

	mu      sync.Mutex
	state   State
	running bool
}

func New(deps Deps) *Orchestrator {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if deps.Observer == nil {
		deps.Observer = Observers(nil)
	}
	return &Orchestrator{deps: deps, state: StateIdle}
}

// State is the state of the current or most recent run.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(r *Report, s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	r.State = s
}

// Run executes every stage in order and blocks until the run is Done or
// Failed. The first failing stage aborts the rest; files written by earlier
// stages stay on disk. The returned report is never nil, except with ErrBusy.
func (o *Orchestrator) Run(ctx context.Context, in Input) (*Report, error) {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.running = true
	o.state = StateIdle
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	// The identity is fixed once, when the action begins.
	started := o.deps.Now()
	id := domain.NewRunIdentity(in.Video, started)
	r := &Report{
		RunID:     uuid.NewString(),
		Identity:  id,
		BaseName:  id.BaseName(),
		State:     StateIdle,
		VideoPath: o.deps.Layout.VideoPath(in.Video),
		StartedAt: started,
	}
	log := o.deps.Logger.With("run", r.BaseName, "run_id", r.RunID)

	log.Info(ctx, "Starting run for %s (fardamento=%s, leitura=%d)", in.Video, in.Fardamento, int(in.Leitura))
	o.deps.Observer.OnRunStart(r)

	if err := domain.ValidateObservations(in.Fardamento, in.Leitura); err != nil {
		return o.fail(ctx, log, r, err)
	}

	err := o.stage(ctx, r, StateExtracting, func() error {
		audio, err := o.deps.Extractor.ExtractAudio(ctx, r.VideoPath, o.deps.Layout.AudioPath(id, o.deps.Extractor.Extension()))
		if err != nil {
			return domain.Wrap(domain.KindExtraction, "extract audio", err)
		}
		r.AudioPath = audio
		return nil
	})
	if err != nil {
		return o.fail(ctx, log, r, err)
	}

	var transcript string
	err = o.stage(ctx, r, StateTranscribing, func() error {
		text, err := o.deps.Transcriber.Transcribe(ctx, r.AudioPath)
		if err != nil {
			return domain.Wrap(domain.KindTranscription, "transcribe", err)
		}
		transcript = text

		path := o.deps.Layout.TranscriptPath(id)
		if err := store.WriteTranscript(path, text); err != nil {
			return err
		}
		r.TranscriptPath = path
		return nil
	})
	if err != nil {
		return o.fail(ctx, log, r, err)
	}

	var rubricContext string
	if o.deps.ContextLoader != nil && o.deps.RubricPath != "" {
		// Never fails: a missing or broken document only leaves a warning.
		_ = o.stage(ctx, r, StateContextLoading, func() error {
			text, ok, warn := o.deps.ContextLoader.Load(ctx, o.deps.RubricPath)
			if warn != nil {
				log.Warn(ctx, "Rubric context unavailable: %v", warn)
				r.Warnings = append(r.Warnings, warn.Error())
			}
			if ok {
				rubricContext = text
				r.ContextLoaded = true
			}
			return nil
		})
	}

	var verdict string
	err = o.stage(ctx, r, StateEvaluating, func() error {
		req, err := domain.NewEvaluationRequest(transcript, in.Fardamento, in.Leitura, rubricContext)
		if err != nil {
			return err
		}
		prompt, err := o.deps.Builder.Build(req)
		if err != nil {
			return err
		}
		text, err := o.deps.Evaluator.Evaluate(ctx, prompt)
		if err != nil {
			return domain.Wrap(domain.KindEvaluation, "evaluate", err)
		}
		verdict = text
		return nil
	})
	if err != nil {
		return o.fail(ctx, log, r, err)
	}

	err = o.stage(ctx, r, StatePersisting, func() error {
		paths, err := o.deps.Results.Save(verdict, r.BaseName)
		if err != nil {
			return domain.Wrap(domain.KindStorageWrite, "save result", err)
		}
		r.ResultPaths = paths
		return nil
	})
	if err != nil {
		return o.fail(ctx, log, r, err)
	}

	r.Result = &domain.EvaluationResult{
		Text:      verdict,
		CreatedAt: o.deps.Now(),
		BaseName:  r.BaseName,
	}
	o.setState(r, StateDone)
	r.FinishedAt = o.deps.Now()
	log.Info(ctx, "Run finished in %s; result saved as %s", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond), r.BaseName)
	o.deps.Observer.OnRunDone(r)
	return r, nil
}

func (o *Orchestrator) stage(ctx context.Context, r *Report, s State, fn func() error) error {
	o.setState(r, s)
	o.deps.Observer.OnStageStart(r, s)

	start := time.Now()
	err := fn()
	dur := time.Since(start)

	res := StageResult{Stage: s, Duration: dur}
	if err != nil {
		res.Error = err.Error()
	}
	r.Stages = append(r.Stages, res)
	o.deps.Observer.OnStageDone(r, s, dur, err)
	return err
}

func (o *Orchestrator) fail(ctx context.Context, log logger.Logger, r *Report, err error) (*Report, error) {
	failedIn := r.State
	o.setState(r, StateFailed)
	r.Error = err.Error()
	r.ErrorKind = domain.KindOf(err)
	r.FinishedAt = o.deps.Now()
	log.Error(ctx, "Run failed while %s: %v", failedIn, err)
	o.deps.Observer.OnRunDone(r)
	return r, err
}
