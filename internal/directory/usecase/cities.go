package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
)

const cacheKeyCities = "directory:cities"

type CreateCityInput struct {
	Name  string `json:"name"  validate:"required,min=2"`
	State string `json:"state" validate:"required,len=2"`
}

type UpdateCityInput struct {
	Name     *string `json:"name"     validate:"omitempty,min=2"`
	State    *string `json:"state"    validate:"omitempty,len=2"`
	IsActive *bool   `json:"isActive"`
}

// ListCities returns every registered city, served from cache when warm.
func (s *Usecase) ListCities(ctx context.Context) ([]entity.City, error) {
	ctx, span := s.startSpan(ctx, "ListCities")
	defer span.End()

	var cached []entity.City
	if err := s.cache.Get(ctx, cacheKeyCities, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.WarnContext(ctx, "failed to read cities cache", "error", err)
	}

	items, err := s.repoDB.ListCities(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list cities", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.cache.Set(ctx, cacheKeyCities, items, s.cfg.GetSecond("directory.cache_ttl_seconds")); err != nil {
		slog.WarnContext(ctx, "failed to write cities cache", "error", err)
	}

	return items, nil
}

func (s *Usecase) CreateCity(ctx context.Context, in CreateCityInput) (*entity.City, error) {
	ctx, span := s.startSpan(ctx, "CreateCity")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	city, err := s.repoDB.CreateCity(ctx, in.Name, in.State)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Cidade já cadastrada", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create city", "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *Usecase) UpdateCity(ctx context.Context, id int64, in UpdateCityInput) (*entity.City, error) {
	ctx, span := s.startSpan(ctx, "UpdateCity")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	city, err := s.repoDB.UpdateCity(ctx, id, entity.CityPatch{
		Name:     in.Name,
		State:    in.State,
		IsActive: in.IsActive,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Cidade não encontrada", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update city", "id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *Usecase) DeleteCity(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteCity")
	defer span.End()

	deleted, err := s.repoDB.DeleteCity(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete city", "id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewBusiness("Cidade não encontrada", goerror.CodeNotFound)
	}

	s.invalidate(ctx, cacheKeyCities)
	return nil
}

func (s *Usecase) ToggleCity(ctx context.Context, id int64) (*entity.City, error) {
	ctx, span := s.startSpan(ctx, "ToggleCity")
	defer span.End()

	city, err := s.repoDB.ToggleCity(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Cidade não encontrada", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo toggle city", "id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *Usecase) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Del(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "failed to invalidate cache", "keys", keys, "error", err)
	}
}
