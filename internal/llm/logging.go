package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// UsageRecord captures one LLM request for the session usage report.
type UsageRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	At           time.Time
}

// UsageRecorder receives a record for every LLM request made through a
// logged provider.
type UsageRecorder interface {
	RecordLLMRequest(ctx context.Context, rec UsageRecord) error
}

// LoggingProvider is a decorator that reports every LLM request to a
// UsageRecorder.
type LoggingProvider struct {
	inner    Provider
	recorder UsageRecorder
}

// WithLogging wraps a Provider with usage recording.
func WithLogging(p Provider, rec UsageRecorder) Provider {
	return &LoggingProvider{inner: p, recorder: rec}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	rec := UsageRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
		At:          start,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = string(resp.Content)
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Record but never fail the request over a recording error.
	if recErr := l.recorder.RecordLLMRequest(ctx, rec); recErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request: %v\n", recErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
