package submit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
)

// Acknowledger accepts requests by logging them. No backend is called.
type Acknowledger struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAcknowledger creates a submitter that logs the payload and acknowledges it
func NewAcknowledger(logger *zap.Logger) *Acknowledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Acknowledger{
		logger: logger,
		now:    time.Now,
	}
}

// Submit implements Submitter
func (a *Acknowledger) Submit(ctx context.Context, req model.Request) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := req.Validate(); err != nil {
		return Receipt{}, fmt.Errorf("refusing malformed request: %w", err)
	}

	fields := []zap.Field{
		zap.String("request_id", req.ID),
		zap.String("scorecard", req.Scorecard.String()),
		zap.Strings("metrics", req.Metrics),
		zap.Strings("dimensions", req.Dimensions),
		zap.String("email", req.Email),
		zap.Time("period_start", req.PeriodStart),
		zap.Time("period_end", req.PeriodEnd),
		zap.Bool("enable_comparison", req.EnableComparison),
	}
	if period, ok := req.Comparison(); ok {
		fields = append(fields,
			zap.Time("compare_start", period.Start),
			zap.Time("compare_end", period.End),
		)
	}
	a.logger.Info("Analysis Parameters", fields...)

	return Receipt{
		RequestID:   req.ID,
		SubmittedAt: a.now(),
		Message:     AcknowledgeMessage,
	}, nil
}

// Close implements Submitter
func (a *Acknowledger) Close() error {
	return a.logger.Sync()
}
