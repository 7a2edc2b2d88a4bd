package usecase

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/pkg/clock"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goroutine"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/mail"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateSubmission(ctx context.Context, sub entity.Submission) error
	UpdateWebhookStatus(ctx context.Context, id string, status, testStatus entity.WebhookStatus) error
	ListSubmissions(ctx context.Context) ([]entity.Submission, error)
	QuerySubmissions(ctx context.Context, filter entity.QueryFilter) ([]entity.Submission, error)
	GetSubmissionBySerial(ctx context.Context, serialNumber int64) (*entity.Submission, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type repoWebhook interface {
	Deliver(ctx context.Context, url string, payload any) error
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
	Ping(ctx context.Context) error
}

type serialGenerator interface {
	Next(ctx context.Context) int64
}

type Usecase struct {
	repoDB      repoDB
	repoWebhook repoWebhook
	repoMail    repoMail
	serial      serialGenerator
	cfg         config.Config
	clock       clock.Clocker
	uuid        uid.StringID
	validator   validator.Validator
	goroutine   *goroutine.Manager
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	RepoWebhook repoWebhook
	RepoMail    repoMail
	Serial      serialGenerator
	Config      config.Config
	Clock       clock.Clocker
	UUID        uid.StringID
	Validator   validator.Validator
	Goroutine   *goroutine.Manager
	Instrument  instrument.Instrumentation
}

func NewRegistration(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		repoWebhook: dep.RepoWebhook,
		repoMail:    dep.RepoMail,
		serial:      dep.Serial,
		cfg:         dep.Config,
		clock:       dep.Clock,
		uuid:        dep.UUID,
		validator:   dep.Validator,
		goroutine:   dep.Goroutine,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("registration.usecase").Start(ctx, name)
}
