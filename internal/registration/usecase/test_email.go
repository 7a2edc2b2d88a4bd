package usecase

import (
	"context"
	"log/slog"
)

// TestEmail probes SMTP connectivity without sending a message.
func (s *Usecase) TestEmail(ctx context.Context) bool {
	ctx, span := s.startSpan(ctx, "TestEmail")
	defer span.End()

	if err := s.repoMail.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "smtp connectivity check failed", "error", err)
		return false
	}

	return true
}
