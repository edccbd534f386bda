package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that logs every LLM request with its
// latency, token usage and estimated cost.
type LoggingProvider struct {
	inner Provider
	log   logrus.FieldLogger
	now   func() time.Time
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log logrus.FieldLogger) Provider {
	return &LoggingProvider{inner: p, log: log, now: time.Now}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"provider":   l.inner.Name(),
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": l.now().Sub(start).Milliseconds(),
	}
	if resp != nil {
		fields["model"] = resp.Model
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		if c := LookupCost(resp.Model); c != nil {
			fields["cost_usd"] = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	entry := l.log.WithFields(fields)
	if err != nil {
		entry.WithError(err).Warn("llm request failed")
		return nil, err
	}
	entry.Debug("llm request")
	return resp, nil
}

func (l *LoggingProvider) Name() string    { return l.inner.Name() }
func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
