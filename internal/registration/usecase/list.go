package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
)

const (
	defaultQueryLimit = 50
	maxQueryLimit     = 500
)

// ListSubmissions returns all submissions, newest first.
func (s *Usecase) ListSubmissions(ctx context.Context) ([]entity.Submission, error) {
	ctx, span := s.startSpan(ctx, "ListSubmissions")
	defer span.End()

	items, err := s.repoDB.ListSubmissions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list submissions", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

// QuerySubmissions returns a filtered page of submissions.
func (s *Usecase) QuerySubmissions(ctx context.Context, filter entity.QueryFilter) ([]entity.Submission, error) {
	ctx, span := s.startSpan(ctx, "QuerySubmissions")
	defer span.End()

	if filter.Limit <= 0 {
		filter.Limit = defaultQueryLimit
	}
	if filter.Limit > maxQueryLimit {
		filter.Limit = maxQueryLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := s.repoDB.QuerySubmissions(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo query submissions", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

// GetBySerial looks a submission up by its public serial number.
func (s *Usecase) GetBySerial(ctx context.Context, serialNumber int64) (*entity.Submission, error) {
	ctx, span := s.startSpan(ctx, "GetBySerial")
	defer span.End()

	sub, err := s.repoDB.GetSubmissionBySerial(ctx, serialNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Cadastro não encontrado", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get submission by serial", "serial_number", serialNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	return sub, nil
}

// Stats aggregates counters for the admin dashboard.
func (s *Usecase) Stats(ctx context.Context) (*entity.Stats, error) {
	ctx, span := s.startSpan(ctx, "Stats")
	defer span.End()

	stats, err := s.repoDB.GetStats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get stats", "error", err)
		return nil, goerror.NewServer(err)
	}

	return stats, nil
}
