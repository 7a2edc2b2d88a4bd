package identity

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ManecoGomes/busca-social/internal/identity/inbound"
	"github.com/ManecoGomes/busca-social/internal/identity/outbound/db"
	"github.com/ManecoGomes/busca-social/internal/identity/usecase"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/hash"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool
	Config     config.Config
	Instrument instrument.Instrumentation
	JWT        jwt.JWT
	Hash       hash.Hash
	Validator  validator.Validator
	Router     *router.Router
}

func New(ctx context.Context, dep Dependency) error {
	dbIdent := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.NewIdentity(usecase.Dependency{
		RepoDB:     dbIdent,
		Config:     dep.Config,
		JWT:        dep.JWT,
		Hash:       dep.Hash,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	if err := uc.EnsureAdmin(ctx); err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
