package registration

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ManecoGomes/busca-social/internal/pkg/clock"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goroutine"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/mail"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
	"github.com/ManecoGomes/busca-social/internal/registration/inbound"
	"github.com/ManecoGomes/busca-social/internal/registration/outbound/db"
	"github.com/ManecoGomes/busca-social/internal/registration/outbound/email"
	"github.com/ManecoGomes/busca-social/internal/registration/outbound/webhook"
	"github.com/ManecoGomes/busca-social/internal/registration/serial"
	"github.com/ManecoGomes/busca-social/internal/registration/usecase"
)

type Dependency struct {
	DBConn     *pgxpool.Pool
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	dbReg := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)
	repoWebhook := webhook.NewClient(dep.Config.GetSecond("registration.webhook_timeout_seconds"), dep.Instrument)

	counterPath := dep.Config.GetString("registration.serial_counter_file")
	if counterPath == "" {
		counterPath = ".serial-counter"
	}
	gen := serial.NewGenerator(serial.NewFileStore(counterPath))

	uc := usecase.NewRegistration(usecase.Dependency{
		RepoDB:      dbReg,
		RepoWebhook: repoWebhook,
		RepoMail:    repoMail,
		Serial:      gen,
		Config:      dep.Config,
		Clock:       dep.Clock,
		UUID:        dep.UUID,
		Validator:   dep.Validator,
		Goroutine:   dep.Goroutine,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
