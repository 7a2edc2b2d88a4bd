package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/identity/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

// EnsureAdmin creates the default admin account when it does not exist yet.
// It is safe to run on every boot.
func (s *Usecase) EnsureAdmin(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "EnsureAdmin")
	defer span.End()

	email := s.cfg.GetString("identity.admin_email")
	if email == "" {
		return nil
	}

	_, err := s.repoDB.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		return err
	}

	hashed, err := s.hash.Hash(s.cfg.GetString("identity.admin_password"))
	if err != nil {
		return err
	}

	if _, err := s.repoDB.CreateUser(ctx, entity.User{
		Username: s.cfg.GetString("identity.admin_username"),
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}); err != nil {
		return err
	}

	slog.InfoContext(ctx, "seeded default admin account", "email", email)
	return nil
}
