package inbound

import (
	"context"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/directory/usecase"
)

type uc interface {
	ListCities(ctx context.Context) ([]entity.City, error)
	CreateCity(ctx context.Context, in usecase.CreateCityInput) (*entity.City, error)
	UpdateCity(ctx context.Context, id int64, in usecase.UpdateCityInput) (*entity.City, error)
	DeleteCity(ctx context.Context, id int64) error
	ToggleCity(ctx context.Context, id int64) (*entity.City, error)

	ListActiveProfessions(ctx context.Context) ([]entity.Profession, error)
	SearchProfessions(ctx context.Context, query string) ([]entity.Profession, error)
	ListProfessions(ctx context.Context) ([]entity.Profession, error)
	CreateProfession(ctx context.Context, in usecase.CreateProfessionInput) (*entity.Profession, error)
	UpdateProfession(ctx context.Context, id int64, in usecase.UpdateProfessionInput) (*entity.Profession, error)
	DeleteProfession(ctx context.Context, id int64) error
	ToggleProfession(ctx context.Context, id int64) (*entity.Profession, error)
	ImportProfessions(ctx context.Context, rows []map[string]any) (*entity.ImportReport, error)
	MigrateProfessions(ctx context.Context, names []string) (*entity.ImportReport, error)

	GetTerms(ctx context.Context) (*entity.TermsOfUse, error)
	UpdateTerms(ctx context.Context, in usecase.UpdateTermsInput) (*entity.TermsOfUse, error)

	CreateContact(ctx context.Context, in usecase.CreateContactInput) (*entity.Contact, error)
	ListContacts(ctx context.Context) ([]entity.Contact, error)

	CreateTestimonial(ctx context.Context, in usecase.CreateTestimonialInput) (*entity.Testimonial, error)
	ListApprovedTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id string) (*entity.Testimonial, error)

	GoogleReviews(ctx context.Context) (*usecase.GoogleReviewsOutput, error)
}
