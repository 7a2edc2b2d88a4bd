package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

// Outcome is the terminal result of one fan-out sink.
type Outcome struct {
	Succeeded bool
	Reason    string
}

func succeeded() Outcome {
	return Outcome{Succeeded: true}
}

func failed(err error) Outcome {
	return Outcome{Reason: err.Error()}
}

// DispatchSummary collects per-sink outcomes of a submission fan-out.
type DispatchSummary struct {
	Production Outcome
	Test       Outcome
	Persist    Outcome
}

// dispatch sends the payload to both webhooks concurrently while the record
// is inserted, and joins all three before returning. Sink failures are
// recorded and logged, never propagated; the registrant's submission does not
// fail because a collaborator is down.
func (s *Usecase) dispatch(ctx context.Context, sub entity.Submission, payload map[string]any) DispatchSummary {
	prodURL := s.cfg.GetString("registration.webhook_production_url")
	testURL := s.cfg.GetString("registration.webhook_test_url")

	var summary DispatchSummary
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		summary.Production = s.deliverWebhook(ctx, "production", prodURL, payload)
	}()
	go func() {
		defer wg.Done()
		summary.Test = s.deliverWebhook(ctx, "test", testURL, payload)
	}()

	if err := s.repoDB.CreateSubmission(ctx, sub); err != nil {
		slog.WarnContext(ctx, "failed to persist submission, continuing",
			"serial_number", sub.SerialNumber, "error", err)
		summary.Persist = failed(err)
	} else {
		summary.Persist = succeeded()
	}

	wg.Wait()
	return summary
}

func (s *Usecase) deliverWebhook(ctx context.Context, name, url string, payload map[string]any) Outcome {
	if url == "" {
		slog.WarnContext(ctx, "webhook url not configured, skipping", "webhook", name)
		return Outcome{Reason: "webhook url not configured"}
	}

	if err := s.repoWebhook.Deliver(ctx, url, payload); err != nil {
		slog.ErrorContext(ctx, "webhook delivery failed", "webhook", name, "error", err)
		return failed(err)
	}

	slog.InfoContext(ctx, "webhook delivered", "webhook", name)
	return succeeded()
}
