package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/clock"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goroutine"
	"github.com/ManecoGomes/busca-social/internal/pkg/hash"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
	"github.com/ManecoGomes/busca-social/internal/pkg/mail"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	cache     cache.Cache
	mail      mail.Mail
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
