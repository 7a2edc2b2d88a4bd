package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/cache"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
	"github.com/ManecoGomes/busca-social/internal/pkg/uid"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string, dst any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(b, dst)
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = b
	return nil
}

func (m *memCache) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

type fakeDirRepo struct {
	mu          sync.Mutex
	professions []entity.Profession
	nextID      int64
	listCalls   int
	terms       *entity.TermsOfUse
}

func (f *fakeDirRepo) ListCities(context.Context) ([]entity.City, error) { return nil, nil }
func (f *fakeDirRepo) CreateCity(context.Context, string, string) (*entity.City, error) {
	return nil, nil
}
func (f *fakeDirRepo) UpdateCity(context.Context, int64, entity.CityPatch) (*entity.City, error) {
	return nil, goerror.ErrNotFound
}
func (f *fakeDirRepo) DeleteCity(context.Context, int64) (bool, error) { return false, nil }
func (f *fakeDirRepo) ToggleCity(context.Context, int64) (*entity.City, error) {
	return nil, goerror.ErrNotFound
}

func (f *fakeDirRepo) ListProfessions(context.Context) ([]entity.Profession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Profession(nil), f.professions...), nil
}

func (f *fakeDirRepo) ListActiveProfessions(context.Context) ([]entity.Profession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	active := make([]entity.Profession, 0, len(f.professions))
	for _, p := range f.professions {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeDirRepo) CountProfessions(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.professions)), nil
}

func (f *fakeDirRepo) CreateProfession(_ context.Context, name, category string) (*entity.Profession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.professions {
		if strings.EqualFold(p.Name, name) {
			return nil, goerror.ErrConflict
		}
	}
	f.nextID++
	p := entity.Profession{ID: f.nextID, Name: name, Category: category, IsActive: true}
	f.professions = append(f.professions, p)
	return &p, nil
}

func (f *fakeDirRepo) UpdateProfession(context.Context, int64, entity.ProfessionPatch) (*entity.Profession, error) {
	return nil, goerror.ErrNotFound
}
func (f *fakeDirRepo) DeleteProfession(context.Context, int64) (bool, error) { return false, nil }
func (f *fakeDirRepo) ToggleProfession(context.Context, int64) (*entity.Profession, error) {
	return nil, goerror.ErrNotFound
}

func (f *fakeDirRepo) GetTermsOfUse(context.Context) (*entity.TermsOfUse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.terms == nil {
		return nil, goerror.ErrNotFound
	}
	return f.terms, nil
}

func (f *fakeDirRepo) CreateTermsOfUse(_ context.Context, content string) (*entity.TermsOfUse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = &entity.TermsOfUse{ID: 1, Content: content}
	return f.terms, nil
}

func (f *fakeDirRepo) UpdateTermsOfUse(_ context.Context, content string, updatedBy int64) (*entity.TermsOfUse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = &entity.TermsOfUse{ID: 1, Content: content, UpdatedBy: &updatedBy}
	return f.terms, nil
}

func (f *fakeDirRepo) CreateContact(context.Context, entity.Contact) (*entity.Contact, error) {
	return nil, nil
}
func (f *fakeDirRepo) ListContacts(context.Context) ([]entity.Contact, error) { return nil, nil }
func (f *fakeDirRepo) CreateTestimonial(context.Context, entity.Testimonial) (*entity.Testimonial, error) {
	return nil, nil
}
func (f *fakeDirRepo) ListApprovedTestimonials(context.Context) ([]entity.Testimonial, error) {
	return nil, nil
}
func (f *fakeDirRepo) ApproveTestimonial(context.Context, string) (*entity.Testimonial, error) {
	return nil, goerror.ErrNotFound
}

func newDirectoryUsecase(t *testing.T, repo *fakeDirRepo) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("directory:\n  cache_ttl_seconds: 300\n"))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return NewDirectory(Dependency{
		RepoDB:     repo,
		Cache:      newMemCache(),
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})
}

func TestImportProfessions(t *testing.T) {
	t.Run("DeduplicatesAndReportsErrors", func(t *testing.T) {
		// Arrange
		repo := &fakeDirRepo{professions: []entity.Profession{
			{ID: 1, Name: "Pedreiro", IsActive: true},
		}, nextID: 1}
		uc := newDirectoryUsecase(t, repo)

		rows := []map[string]any{
			{"nome": "Eletricista"},
			{"profissao": "pedreiro"},
			{"name": "Eletricista"},
			{"other": "no name here"},
			{"profession": "Encanador"},
		}

		// Act
		report, err := uc.ImportProfessions(context.Background(), rows)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Added != 2 {
			t.Fatalf("expected 2 added, got %d", report.Added)
		}
		if report.Skipped != 2 {
			t.Fatalf("expected 2 skipped, got %d", report.Skipped)
		}
		if report.Errors != 1 {
			t.Fatalf("expected 1 error, got %d", report.Errors)
		}
		if report.Total != 5 {
			t.Fatalf("expected total 5, got %d", report.Total)
		}
		if len(report.ErrorDetails) != 1 || !strings.HasPrefix(report.ErrorDetails[0], "Linha 4:") {
			t.Fatalf("expected line-numbered error detail, got %v", report.ErrorDetails)
		}
	})

	t.Run("ColumnNamesMatchCaseInsensitively", func(t *testing.T) {
		// Arrange
		repo := &fakeDirRepo{nextID: 1}
		uc := newDirectoryUsecase(t, repo)

		rows := []map[string]any{
			{"Nome": "Eletricista"},
			{"Profissao": "Encanador"},
			{"NAME": "Marceneiro"},
		}

		// Act
		report, err := uc.ImportProfessions(context.Background(), rows)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Added != 3 || report.Errors != 0 {
			t.Fatalf("expected all rows imported, got %+v", report)
		}
	})

	t.Run("EmptyInputRejected", func(t *testing.T) {
		// Arrange
		uc := newDirectoryUsecase(t, &fakeDirRepo{})

		// Act
		_, err := uc.ImportProfessions(context.Background(), nil)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
	})
}

func TestSearchProfessions(t *testing.T) {
	// Arrange
	repo := &fakeDirRepo{professions: []entity.Profession{
		{ID: 1, Name: "Eletricista", IsActive: true},
		{ID: 2, Name: "Eletricista de Autos", IsActive: true},
		{ID: 3, Name: "Pedreiro", IsActive: true},
		{ID: 4, Name: "Eletrotécnico", IsActive: false},
	}, nextID: 4}
	uc := newDirectoryUsecase(t, repo)

	// Act
	items, err := uc.SearchProfessions(context.Background(), "eletricista")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(items))
	}
}

func TestListActiveProfessionsUsesCache(t *testing.T) {
	// Arrange
	repo := &fakeDirRepo{professions: []entity.Profession{
		{ID: 1, Name: "Pedreiro", IsActive: true},
	}, nextID: 1}
	uc := newDirectoryUsecase(t, repo)

	// Act
	if _, err := uc.ListActiveProfessions(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ListActiveProfessions(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if repo.listCalls != 1 {
		t.Fatalf("expected single repo call with warm cache, got %d", repo.listCalls)
	}
}

func TestUpdateTerms(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		// Arrange
		uc := newDirectoryUsecase(t, &fakeDirRepo{})
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7})

		// Act
		_, err := uc.UpdateTerms(ctx, UpdateTermsInput{Content: "muito curto"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 400 {
			t.Fatalf("expected status 400, got %d", gerr.StatusCode())
		}
	})

	t.Run("RecordsUpdater", func(t *testing.T) {
		// Arrange
		repo := &fakeDirRepo{}
		uc := newDirectoryUsecase(t, repo)
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7})
		content := strings.Repeat("Termos de uso da plataforma. ", 10)

		// Act
		terms, err := uc.UpdateTerms(ctx, UpdateTermsInput{Content: content})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if terms.UpdatedBy == nil || *terms.UpdatedBy != 7 {
			t.Fatalf("expected updater id 7, got %v", terms.UpdatedBy)
		}
	})

	t.Run("MissingClaims", func(t *testing.T) {
		// Arrange
		uc := newDirectoryUsecase(t, &fakeDirRepo{})
		content := strings.Repeat("Termos de uso da plataforma. ", 10)

		// Act
		_, err := uc.UpdateTerms(context.Background(), UpdateTermsInput{Content: content})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 401 {
			t.Fatalf("expected status 401, got %d", gerr.StatusCode())
		}
	})
}

func TestEnsureDefaults(t *testing.T) {
	// Arrange
	repo := &fakeDirRepo{}
	uc := newDirectoryUsecase(t, repo)

	// Act
	if err := uc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if repo.terms == nil {
		t.Fatalf("expected default terms seeded")
	}
	if len(repo.professions) != len(professionSeed) {
		t.Fatalf("expected %d professions seeded, got %d", len(professionSeed), len(repo.professions))
	}

	// Act: second run must be a no-op.
	if err := uc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(repo.professions) != len(professionSeed) {
		t.Fatalf("expected rerun to add nothing, got %d", len(repo.professions))
	}
}
