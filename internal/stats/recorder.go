// Package stats aggregates latency samples for repeated exchanges.
package stats

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in microseconds: 1µs to 10 minutes, 3 significant
// figures.
const (
	histogramMin     = 1
	histogramMax     = int64(10 * time.Minute / time.Microsecond)
	histogramSigFigs = 3
)

// Recorder collects exchange durations into an HDR histogram. It is safe
// for concurrent use; RecordValue is not thread-safe, so a lock is held.
type Recorder struct {
	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	failures int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one successful exchange duration.
func (r *Recorder) Record(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.hist.RecordValue(int64(d / time.Microsecond))
}

// RecordFailure counts a failed exchange; failures carry no latency.
func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

// Count returns the number of recorded successes.
func (r *Recorder) Count() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hist.TotalCount()
}

// Failures returns the number of recorded failures.
func (r *Recorder) Failures() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}

// Mean returns the mean latency.
func (r *Recorder) Mean() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.Mean()) * time.Microsecond
}

// Max returns the maximum latency.
func (r *Recorder) Max() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.Max()) * time.Microsecond
}

// Percentile returns the latency at the given quantile (e.g. 95 for
// p95).
func (r *Recorder) Percentile(q float64) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.ValueAtQuantile(q)) * time.Microsecond
}

// Summary is a snapshot of the recorded distribution.
type Summary struct {
	Count    int64
	Failures int64
	Mean     time.Duration
	Max      time.Duration
	P50      time.Duration
	P90      time.Duration
	P95      time.Duration
	P99      time.Duration
}

// Snapshot returns a consistent summary of everything recorded so far.
func (r *Recorder) Snapshot() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Summary{
		Count:    r.hist.TotalCount(),
		Failures: r.failures,
		Mean:     time.Duration(r.hist.Mean()) * time.Microsecond,
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:      time.Duration(r.hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}
