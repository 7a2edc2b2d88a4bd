package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/identity/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token string
	User  entity.User
}

// Login authenticates an admin account and issues a JWT.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Email ou senha inválidos", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.hash.Verify(user.Password, in.Password) {
		return nil, goerror.NewBusiness("Email ou senha inválidos", goerror.CodeUnauthorized)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{Token: token, User: *user}, nil
}
