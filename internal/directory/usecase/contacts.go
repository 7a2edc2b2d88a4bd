package usecase

import (
	"context"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

type CreateContactInput struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Phone    string `json:"phone"    validate:"required,phonedigits"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message"  validate:"omitempty,min=10"`
}

// CreateContact stores a contact request from the public site.
func (s *Usecase) CreateContact(ctx context.Context, in CreateContactInput) (*entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "CreateContact")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	contact, err := s.repoDB.CreateContact(ctx, entity.Contact{
		ID:       s.uuid.Generate(),
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Category: in.Category,
		Message:  in.Message,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create contact", "error", err)
		return nil, goerror.NewServer(err)
	}

	return contact, nil
}

// ListContacts returns every contact request, newest first.
func (s *Usecase) ListContacts(ctx context.Context) ([]entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "ListContacts")
	defer span.End()

	items, err := s.repoDB.ListContacts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list contacts", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}
