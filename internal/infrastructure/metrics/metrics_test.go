package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Mutation("proposal", "create", nil)
	r.Mutation("proposal", "create", errors.New("boom"))
	r.Propagated("proposal", 3)
	r.Propagated("proposal", 0)
	r.Unresolved("engagement_create")
	r.ObserveStore("file", "save", time.Now())
	r.HTTPRequest("GET", "/v1/stages", 200, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("proposal", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("proposal", "create", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.propagations.WithLabelValues("proposal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.unresolved.WithLabelValues("engagement_create")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.storeDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(r.httpRequests))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.Mutation("stage", "create", nil)
	r.Propagated("consultant", 2)
	r.Unresolved("engagement_update")
	r.ObserveStore("memory", "load", time.Now())
	r.HTTPRequest("GET", "/v1/ping", 200, time.Millisecond)
}
