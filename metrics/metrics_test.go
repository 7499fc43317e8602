package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatal(err)
	}
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatal(err)
	}
	return m.GetCounter().GetValue()
}

func TestSampleSetsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Sample(3, 12, -4.5, 2)

	if got := gaugeValue(t, m.SupportPatterns); got != 3 {
		t.Errorf("SupportPatterns = %v, want 3", got)
	}
	if got := gaugeValue(t, m.SupportVectors); got != 12 {
		t.Errorf("SupportVectors = %v, want 12", got)
	}
	if got := gaugeValue(t, m.DualObjective); got != -4.5 {
		t.Errorf("DualObjective = %v, want -4.5", got)
	}
	if got := gaugeValue(t, m.IllConditioned); got != 2 {
		t.Errorf("IllConditioned = %v, want 2", got)
	}
}

func TestRecordEvictionsAccumulates(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordEvictions(2)
	m.RecordEvictions(3)
	m.RecordEvictions(0)

	if got := counterValue(t, m.Evictions); got != 5 {
		t.Errorf("Evictions = %v, want 5", got)
	}
}
