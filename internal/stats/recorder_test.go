package stats

import (
	"sync"
	"testing"
	"time"
)

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i) * time.Millisecond)
	}
	r.RecordFailure()

	s := r.Snapshot()
	if s.Count != 100 {
		t.Errorf("Expected count 100, got %d", s.Count)
	}
	if s.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", s.Failures)
	}

	// HDR histograms are approximate; allow 1% slack.
	approx := func(got, want time.Duration) bool {
		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		return diff <= want/100+time.Millisecond
	}

	if !approx(s.P50, 50*time.Millisecond) {
		t.Errorf("Expected p50 ≈ 50ms, got %v", s.P50)
	}
	if !approx(s.P99, 99*time.Millisecond) {
		t.Errorf("Expected p99 ≈ 99ms, got %v", s.P99)
	}
	if !approx(s.Max, 100*time.Millisecond) {
		t.Errorf("Expected max ≈ 100ms, got %v", s.Max)
	}
	if s.Mean <= 0 {
		t.Errorf("Expected positive mean, got %v", s.Mean)
	}
}

func TestRecorder_Empty(t *testing.T) {
	r := NewRecorder()

	if r.Count() != 0 {
		t.Errorf("Expected count 0, got %d", r.Count())
	}
	if r.Percentile(99) != 0 {
		t.Errorf("Expected zero p99 on empty recorder, got %v", r.Percentile(99))
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if r.Count() != 800 {
		t.Errorf("Expected 800 samples, got %d", r.Count())
	}
}
