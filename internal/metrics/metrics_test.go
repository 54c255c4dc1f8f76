package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	done := &workflow.Report{}
	r.OnRunStart(done)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.inFlight))

	r.OnStageDone(done, workflow.StateExtracting, 2*time.Second, nil)
	r.OnStageDone(done, workflow.StateTranscribing, time.Second, errors.New("x"))
	done.State = workflow.StateDone
	done.Warnings = []string{"context_load_failure: missing"}
	r.OnRunDone(done)

	failed := &workflow.Report{State: workflow.StateFailed, ErrorKind: domain.KindEvaluation}
	r.OnRunStart(failed)
	r.OnRunDone(failed)

	assert.Equal(t, 0.0, testutil.ToFloat64(r.inFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failuresTotal.WithLabelValues("evaluation_failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.warnings))
	assert.Equal(t, 2, testutil.CollectAndCount(r.stageDuration))
}
