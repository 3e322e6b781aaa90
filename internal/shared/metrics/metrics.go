package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	jobsReorderedTotal       atomic.Uint64
	reorderConflictsTotal    atomic.Uint64
	stageChangesTotal        atomic.Uint64
	submissionsAcceptedTotal atomic.Uint64
	submissionsRejectedTotal atomic.Uint64

	requestDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500})
)

// IncJobsReordered increments the reorder counter.
func IncJobsReordered() {
	jobsReorderedTotal.Add(1)
}

// IncReorderConflicts increments the reorder conflict counter.
func IncReorderConflicts() {
	reorderConflictsTotal.Add(1)
}

// IncStageChanges increments the candidate stage change counter.
func IncStageChanges() {
	stageChangesTotal.Add(1)
}

// IncSubmissionsAccepted increments the accepted submission counter.
func IncSubmissionsAccepted() {
	submissionsAcceptedTotal.Add(1)
}

// IncSubmissionsRejected increments the rejected submission counter.
func IncSubmissionsRejected() {
	submissionsRejectedTotal.Add(1)
}

// ObserveRequestDurationMs records a request duration in milliseconds.
func ObserveRequestDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	requestDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "jobs_reordered_total", "Total job reorder operations applied", jobsReorderedTotal.Load())
	writeCounter(&buf, "reorder_conflicts_total", "Total job reorders rejected on a stale fromOrder", reorderConflictsTotal.Load())
	writeCounter(&buf, "stage_changes_total", "Total candidate stage transitions", stageChangesTotal.Load())
	writeCounter(&buf, "submissions_accepted_total", "Total assessment submissions accepted", submissionsAcceptedTotal.Load())
	writeCounter(&buf, "submissions_rejected_total", "Total assessment submissions rejected by validation", submissionsRejectedTotal.Load())
	writeHistogram(&buf, "request_duration_ms", "HTTP request duration in milliseconds", requestDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	// Observe already records cumulative bucket counts.
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=\"%g\"} %d\n", name, bound, snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
