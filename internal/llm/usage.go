package llm

import (
	"context"
	"sync"
)

// MemoryUsageRecorder accumulates usage records for the life of the
// process. The llm command reads it to print a per-session usage report.
type MemoryUsageRecorder struct {
	mu      sync.Mutex
	records []UsageRecord
}

// NewMemoryUsageRecorder creates an empty recorder.
func NewMemoryUsageRecorder() *MemoryUsageRecorder {
	return &MemoryUsageRecorder{}
}

// RecordLLMRequest appends the record. Never returns an error.
func (r *MemoryUsageRecorder) RecordLLMRequest(_ context.Context, rec UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// Records returns a copy of everything recorded so far.
func (r *MemoryUsageRecorder) Records() []UsageRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UsageRecord, len(r.records))
	copy(out, r.records)
	return out
}

// UsageSummary aggregates the session's LLM traffic.
type UsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int

	// EstimatedCostUSD is computed from the embedded pricing table.
	// Requests against models missing from the table contribute zero
	// and are counted in UnpricedRequests.
	EstimatedCostUSD float64
	UnpricedRequests int
}

// Summary totals the recorded requests.
func (r *MemoryUsageRecorder) Summary() UsageSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s UsageSummary
	for _, rec := range r.records {
		s.Requests++
		if !rec.Success {
			s.Failures++
		}
		s.InputTokens += rec.InputTokens
		s.OutputTokens += rec.OutputTokens

		if c := LookupCost(rec.Model); c != nil {
			s.EstimatedCostUSD += c.Cost(rec.InputTokens, rec.OutputTokens)
		} else {
			s.UnpricedRequests++
		}
	}
	return s
}
