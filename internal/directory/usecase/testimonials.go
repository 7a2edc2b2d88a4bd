package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

type CreateTestimonialInput struct {
	Name       string `json:"name"       validate:"required,min=2"`
	Profession string `json:"profession" validate:"required,min=2"`
	Testimony  string `json:"testimony"  validate:"required,min=10"`
	Rating     int    `json:"rating"     validate:"required,min=1,max=5"`
}

// CreateTestimonial stores a new testimonial pending approval.
func (s *Usecase) CreateTestimonial(ctx context.Context, in CreateTestimonialInput) (*entity.Testimonial, error) {
	ctx, span := s.startSpan(ctx, "CreateTestimonial")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	testimonial, err := s.repoDB.CreateTestimonial(ctx, entity.Testimonial{
		ID:         s.uuid.Generate(),
		Name:       in.Name,
		Profession: in.Profession,
		Testimony:  in.Testimony,
		Rating:     in.Rating,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create testimonial", "error", err)
		return nil, goerror.NewServer(err)
	}

	return testimonial, nil
}

// ListApprovedTestimonials returns only the testimonials cleared for display.
func (s *Usecase) ListApprovedTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	ctx, span := s.startSpan(ctx, "ListApprovedTestimonials")
	defer span.End()

	items, err := s.repoDB.ListApprovedTestimonials(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list approved testimonials", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

// ApproveTestimonial marks a testimonial as visible to the public site.
func (s *Usecase) ApproveTestimonial(ctx context.Context, id string) (*entity.Testimonial, error) {
	ctx, span := s.startSpan(ctx, "ApproveTestimonial")
	defer span.End()

	testimonial, err := s.repoDB.ApproveTestimonial(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Depoimento não encontrado", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo approve testimonial", "id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return testimonial, nil
}
