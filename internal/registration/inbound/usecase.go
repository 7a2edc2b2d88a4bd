package inbound

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/registration/entity"
	"github.com/ManecoGomes/busca-social/internal/registration/usecase"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
	ListSubmissions(ctx context.Context) ([]entity.Submission, error)
	QuerySubmissions(ctx context.Context, filter entity.QueryFilter) ([]entity.Submission, error)
	GetBySerial(ctx context.Context, serialNumber int64) (*entity.Submission, error)
	Stats(ctx context.Context) (*entity.Stats, error)
	TestEmail(ctx context.Context) bool
}
