package usecase

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/directory/outbound/places"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListCities(ctx context.Context) ([]entity.City, error)
	CreateCity(ctx context.Context, name, state string) (*entity.City, error)
	UpdateCity(ctx context.Context, id int64, patch entity.CityPatch) (*entity.City, error)
	DeleteCity(ctx context.Context, id int64) (bool, error)
	ToggleCity(ctx context.Context, id int64) (*entity.City, error)

	ListProfessions(ctx context.Context) ([]entity.Profession, error)
	ListActiveProfessions(ctx context.Context) ([]entity.Profession, error)
	CountProfessions(ctx context.Context) (int64, error)
	CreateProfession(ctx context.Context, name, category string) (*entity.Profession, error)
	UpdateProfession(ctx context.Context, id int64, patch entity.ProfessionPatch) (*entity.Profession, error)
	DeleteProfession(ctx context.Context, id int64) (bool, error)
	ToggleProfession(ctx context.Context, id int64) (*entity.Profession, error)

	GetTermsOfUse(ctx context.Context) (*entity.TermsOfUse, error)
	CreateTermsOfUse(ctx context.Context, content string) (*entity.TermsOfUse, error)
	UpdateTermsOfUse(ctx context.Context, content string, updatedBy int64) (*entity.TermsOfUse, error)

	CreateContact(ctx context.Context, c entity.Contact) (*entity.Contact, error)
	ListContacts(ctx context.Context) ([]entity.Contact, error)

	CreateTestimonial(ctx context.Context, t entity.Testimonial) (*entity.Testimonial, error)
	ListApprovedTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id string) (*entity.Testimonial, error)
}

type repoPlaces interface {
	GetDetails(ctx context.Context, placeID, apiKey string) (*places.Details, error)
}

type Usecase struct {
	repoDB     repoDB
	repoPlaces repoPlaces
	cache      cache.Cache
	cfg        config.Config
	uuid       uid.StringID
	validator  validator.Validator
	ins        instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoPlaces repoPlaces
	Cache      cache.Cache
	Config     config.Config
	UUID       uid.StringID
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func NewDirectory(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:     dep.RepoDB,
		repoPlaces: dep.RepoPlaces,
		cache:      dep.Cache,
		cfg:        dep.Config,
		uuid:       dep.UUID,
		validator:  dep.Validator,
		ins:        dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("directory.usecase").Start(ctx, name)
}
