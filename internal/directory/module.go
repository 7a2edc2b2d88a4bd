package directory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ManecoGomes/busca-social/internal/directory/inbound"
	"github.com/ManecoGomes/busca-social/internal/directory/outbound/db"
	"github.com/ManecoGomes/busca-social/internal/directory/outbound/places"
	"github.com/ManecoGomes/busca-social/internal/directory/usecase"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool
	Cache      cache.Cache
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Validator  validator.Validator
	Router     *router.Router
}

func New(ctx context.Context, dep Dependency) error {
	dbDir := db.NewDB(dep.DBConn, dep.Instrument)
	placesDir := places.NewClient(dep.Config.GetSecond("directory.google_timeout_seconds"), dep.Instrument)

	uc := usecase.NewDirectory(usecase.Dependency{
		RepoDB:     dbDir,
		RepoPlaces: placesDir,
		Cache:      dep.Cache,
		Config:     dep.Config,
		UUID:       dep.UUID,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	if err := uc.EnsureDefaults(ctx); err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
