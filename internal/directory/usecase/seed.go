package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

// EnsureDefaults seeds the terms of use and the profession catalog when the
// database is empty or sparse. It is safe to run on every boot.
func (s *Usecase) EnsureDefaults(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "EnsureDefaults")
	defer span.End()

	if err := s.ensureTerms(ctx); err != nil {
		return err
	}

	return s.ensureProfessions(ctx)
}

func (s *Usecase) ensureTerms(ctx context.Context) error {
	_, err := s.repoDB.GetTermsOfUse(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		return err
	}

	if _, err := s.repoDB.CreateTermsOfUse(ctx, defaultTermsOfUse); err != nil {
		return err
	}

	slog.InfoContext(ctx, "seeded default terms of use")
	return nil
}

func (s *Usecase) ensureProfessions(ctx context.Context) error {
	count, err := s.repoDB.CountProfessions(ctx)
	if err != nil {
		return err
	}
	if count >= int64(len(professionSeed)) {
		return nil
	}

	added := 0
	for _, name := range professionSeed {
		_, err := s.repoDB.CreateProfession(ctx, name, "")
		if errors.Is(err, goerror.ErrConflict) {
			continue
		}
		if err != nil {
			return err
		}
		added++
	}

	if added > 0 {
		s.invalidate(ctx, cacheKeyActiveProfessions)
		slog.InfoContext(ctx, "seeded profession catalog", "added", added)
	}

	return nil
}
