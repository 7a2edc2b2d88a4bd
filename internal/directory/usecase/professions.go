package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/samber/lo"
)

const cacheKeyActiveProfessions = "directory:professions:active"

// importNameKeys are the spreadsheet column names accepted on import.
var importNameKeys = []string{"nome", "profissao", "name", "profession"}

type CreateProfessionInput struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Category string `json:"category" validate:"omitempty,min=2"`
}

type UpdateProfessionInput struct {
	Name     *string `json:"name"     validate:"omitempty,min=2"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

// ListActiveProfessions returns the public profession list, served from cache
// when warm.
func (s *Usecase) ListActiveProfessions(ctx context.Context) ([]entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "ListActiveProfessions")
	defer span.End()

	var cached []entity.Profession
	if err := s.cache.Get(ctx, cacheKeyActiveProfessions, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.WarnContext(ctx, "failed to read professions cache", "error", err)
	}

	items, err := s.repoDB.ListActiveProfessions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list active professions", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.cache.Set(ctx, cacheKeyActiveProfessions, items, s.cfg.GetSecond("directory.cache_ttl_seconds")); err != nil {
		slog.WarnContext(ctx, "failed to write professions cache", "error", err)
	}

	return items, nil
}

// SearchProfessions filters the active professions by a case-insensitive
// substring of the name.
func (s *Usecase) SearchProfessions(ctx context.Context, query string) ([]entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "SearchProfessions")
	defer span.End()

	items, err := s.ListActiveProfessions(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items, nil
	}

	return lo.Filter(items, func(p entity.Profession, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

// ListProfessions returns every profession, active or not.
func (s *Usecase) ListProfessions(ctx context.Context) ([]entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "ListProfessions")
	defer span.End()

	items, err := s.repoDB.ListProfessions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list professions", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) CreateProfession(ctx context.Context, in CreateProfessionInput) (*entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "CreateProfession")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	prof, err := s.repoDB.CreateProfession(ctx, strings.TrimSpace(in.Name), strings.TrimSpace(in.Category))
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Profissão já cadastrada", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create profession", "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyActiveProfessions)
	return prof, nil
}

func (s *Usecase) UpdateProfession(ctx context.Context, id int64, in UpdateProfessionInput) (*entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "UpdateProfession")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	prof, err := s.repoDB.UpdateProfession(ctx, id, entity.ProfessionPatch{
		Name:     in.Name,
		Category: in.Category,
		IsActive: in.IsActive,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Profissão não encontrada", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update profession", "id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyActiveProfessions)
	return prof, nil
}

func (s *Usecase) DeleteProfession(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteProfession")
	defer span.End()

	deleted, err := s.repoDB.DeleteProfession(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete profession", "id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewBusiness("Profissão não encontrada", goerror.CodeNotFound)
	}

	s.invalidate(ctx, cacheKeyActiveProfessions)
	return nil
}

func (s *Usecase) ToggleProfession(ctx context.Context, id int64) (*entity.Profession, error) {
	ctx, span := s.startSpan(ctx, "ToggleProfession")
	defer span.End()

	prof, err := s.repoDB.ToggleProfession(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Profissão não encontrada", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo toggle profession", "id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.invalidate(ctx, cacheKeyActiveProfessions)
	return prof, nil
}

// ImportProfessions loads professions from spreadsheet-style rows. The name is
// read from the first of the accepted column names; duplicates are skipped
// case-insensitively and malformed rows are reported by line number.
func (s *Usecase) ImportProfessions(ctx context.Context, rows []map[string]any) (*entity.ImportReport, error) {
	ctx, span := s.startSpan(ctx, "ImportProfessions")
	defer span.End()

	if len(rows) == 0 {
		return nil, goerror.NewInvalidInput(nil, "professions", "Nenhuma profissão para importar")
	}

	existing, err := s.repoDB.ListProfessions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list professions", "error", err)
		return nil, goerror.NewServer(err)
	}

	seen := make(map[string]bool, len(existing))
	for _, key := range lo.Map(existing, func(p entity.Profession, _ int) string {
		return strings.ToLower(p.Name)
	}) {
		seen[key] = true
	}

	report := &entity.ImportReport{Total: len(rows)}
	for i, row := range rows {
		name := extractImportName(row)
		if name == "" {
			report.Errors++
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Linha %d: nome da profissão ausente", i+1))
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			report.Skipped++
			continue
		}

		category, _ := row["category"].(string)
		if _, err := s.repoDB.CreateProfession(ctx, name, strings.TrimSpace(category)); err != nil {
			if errors.Is(err, goerror.ErrConflict) {
				report.Skipped++
				seen[key] = true
				continue
			}
			report.Errors++
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Linha %d: %v", i+1, err))
			continue
		}

		seen[key] = true
		report.Added++
	}

	s.invalidate(ctx, cacheKeyActiveProfessions)
	return report, nil
}

// MigrateProfessions inserts a plain list of names, skipping the ones that
// already exist.
func (s *Usecase) MigrateProfessions(ctx context.Context, names []string) (*entity.ImportReport, error) {
	ctx, span := s.startSpan(ctx, "MigrateProfessions")
	defer span.End()

	if len(names) == 0 {
		return nil, goerror.NewInvalidInput(nil, "professions", "Nenhuma profissão para migrar")
	}

	rows := lo.Map(names, func(name string, _ int) map[string]any {
		return map[string]any{"name": name}
	})

	return s.ImportProfessions(ctx, rows)
}

func extractImportName(row map[string]any) string {
	for _, key := range importNameKeys {
		for rowKey, rowValue := range row {
			if !strings.EqualFold(rowKey, key) {
				continue
			}
			if v, ok := rowValue.(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}

	return ""
}
