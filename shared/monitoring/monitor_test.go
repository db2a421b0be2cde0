package monitoring

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMonitorHealthTransitions(t *testing.T) {
	m := NewMonitor()

	if !m.IsHealthy() {
		t.Error("new monitor should report healthy before any runs")
	}
	if got := m.GetStatusSummary(); got != "No analyses yet" {
		t.Errorf("GetStatusSummary() = %q, want %q", got, "No analyses yet")
	}

	m.RecordFailure(errors.New("boom"), time.Second)
	if m.IsHealthy() {
		t.Error("monitor should be unhealthy after a failure")
	}
	if got := m.GetStatusSummary(); !strings.HasPrefix(got, "❌ Last analysis failed:") {
		t.Errorf("unexpected failure summary: %q", got)
	}

	m.RecordSuccess("Demo Tech Creator (youtube)", 2*time.Second)
	if !m.IsHealthy() {
		t.Error("monitor should be healthy after a success")
	}
	if got := m.GetStatusSummary(); !strings.HasPrefix(got, "✅ Last analysis:") {
		t.Errorf("unexpected success summary: %q", got)
	}
}
