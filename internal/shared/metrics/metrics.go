package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	applicationsSubmittedTotal atomic.Uint64
	applicationsCancelledTotal atomic.Uint64
	likesToggledTotal          atomic.Uint64

	statusTransitions = newLabeledCounter()
)

// IncApplicationSubmitted increments the submitted-applications counter.
func IncApplicationSubmitted() {
	applicationsSubmittedTotal.Add(1)
}

// IncApplicationCancelled increments the cancelled-applications counter.
func IncApplicationCancelled() {
	applicationsCancelledTotal.Add(1)
}

// IncLikeToggled increments the like-toggle counter.
func IncLikeToggled() {
	likesToggledTotal.Add(1)
}

// IncStatusTransition records one status transition, labeled from->to.
func IncStatusTransition(from, to string) {
	statusTransitions.inc(from + "->" + to)
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
	writeCounter(&buf, "applications_submitted_total", "Total applications submitted", applicationsSubmittedTotal.Load())
	writeCounter(&buf, "applications_cancelled_total", "Total applications cancelled", applicationsCancelledTotal.Load())
	writeCounter(&buf, "likes_toggled_total", "Total like toggles", likesToggledTotal.Load())
	writeLabeledCounter(&buf, "application_status_transitions_total", "Total application status transitions", "transition", statusTransitions.snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{counts: make(map[string]uint64)}
}

func (lc *labeledCounter) inc(label string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.counts[label]++
}

func (lc *labeledCounter) snapshot() map[string]uint64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	out := make(map[string]uint64, len(lc.counts))
	for k, v := range lc.counts {
		out[k] = v
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, counts map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, counts[k])
	}
}
