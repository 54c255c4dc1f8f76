package workflow

import (
	"time"
)

// Observer receives progress events from a run. The orchestrator calls it
// synchronously from the run's goroutine.
type Observer interface {
	OnRunStart(r *Report)
	OnStageStart(r *Report, stage State)
	OnStageDone(r *Report, stage State, dur time.Duration, err error)
	OnRunDone(r *Report)
}

// Observers fans events out to several observers in order.
type Observers []Observer

func (o Observers) OnRunStart(r *Report) {
	for _, obs := range o {
		obs.OnRunStart(r)
	}
}

func (o Observers) OnStageStart(r *Report, stage State) {
	for _, obs := range o {
		obs.OnStageStart(r, stage)
	}
}

func (o Observers) OnStageDone(r *Report, stage State, dur time.Duration, err error) {
	for _, obs := range o {
		obs.OnStageDone(r, stage, dur, err)
	}
}

func (o Observers) OnRunDone(r *Report) {
	for _, obs := range o {
		obs.OnRunDone(r)
	}
}
