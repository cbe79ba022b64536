package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(TaskMutations.WithLabelValues("create"))
	IncrementTaskMutation("create")
	assert.Equal(t, before+1, testutil.ToFloat64(TaskMutations.WithLabelValues("create")))

	before = testutil.ToFloat64(AuthFailures.WithLabelValues("login"))
	IncrementAuthFailure("login")
	assert.Equal(t, before+1, testutil.ToFloat64(AuthFailures.WithLabelValues("login")))
}

func TestRecordHTTPRequestDuration(t *testing.T) {
	RecordHTTPRequestDuration("GET", "/api/tasks/{id}", 200, 15*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
