package app

import (
	"log/slog"
	"os"

	"github.com/ManecoGomes/busca-social/internal/directory"
	"github.com/ManecoGomes/busca-social/internal/identity"
	"github.com/ManecoGomes/busca-social/internal/registration"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.registration.enabled") {
		if err := registration.New(registration.Dependency{
			DBConn:     a.dbConn,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module registration", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.directory.enabled") {
		if err := directory.New(a.ctx, directory.Dependency{
			DBConn:     a.dbConn,
			Cache:      a.cache,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Validator:  a.validator,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module directory", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(a.ctx, identity.Dependency{
			DBConn:     a.dbConn,
			Config:     a.config,
			Instrument: a.ins,
			JWT:        a.jwt,
			Hash:       a.bcrypt,
			Validator:  a.validator,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}
}
