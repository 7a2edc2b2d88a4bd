package inbound

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/identity/entity"
	"github.com/ManecoGomes/busca-social/internal/identity/usecase"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Profile(ctx context.Context) (*entity.User, error)
}
