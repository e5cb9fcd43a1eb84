package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectors(t *testing.T) {
	m := New("cubeview")
	m.StepsCompleted.Inc()
	m.StepsCompleted.Inc()
	m.RequestFailures.WithLabelValues("solve").Inc()

	if got := testutil.ToFloat64(m.StepsCompleted); got != 2 {
		t.Errorf("steps = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RequestFailures.WithLabelValues("solve")); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New("cubeview")
	m.QueueDepth.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "cubeview_animation_queue_depth 3") {
		t.Errorf("metrics output missing queue depth:\n%s", body)
	}
}

func TestSeparateInstancesDoNotCollide(t *testing.T) {
	// Each instance has its own registry, so building two must not panic.
	New("a")
	New("a")
}
