package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
)

const minTermsLength = 100

type UpdateTermsInput struct {
	Content string `json:"content"`
}

// GetTerms returns the current terms of use document.
func (s *Usecase) GetTerms(ctx context.Context) (*entity.TermsOfUse, error) {
	ctx, span := s.startSpan(ctx, "GetTerms")
	defer span.End()

	terms, err := s.repoDB.GetTermsOfUse(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Termos de uso não encontrados", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get terms of use", "error", err)
		return nil, goerror.NewServer(err)
	}

	return terms, nil
}

// UpdateTerms replaces the terms document and records who changed it.
func (s *Usecase) UpdateTerms(ctx context.Context, in UpdateTermsInput) (*entity.TermsOfUse, error) {
	ctx, span := s.startSpan(ctx, "UpdateTerms")
	defer span.End()

	content := strings.TrimSpace(in.Content)
	if len([]rune(content)) < minTermsLength {
		return nil, goerror.NewInvalidInput(nil, "content", "O conteúdo deve ter pelo menos 100 caracteres")
	}

	claims := jwt.GetAuth(ctx)
	if claims == nil {
		return nil, goerror.NewBusiness("Token não fornecido", goerror.CodeUnauthorized)
	}

	terms, err := s.repoDB.UpdateTermsOfUse(ctx, content, claims.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update terms of use", "error", err)
		return nil, goerror.NewServer(err)
	}

	return terms, nil
}
