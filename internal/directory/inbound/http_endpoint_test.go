package inbound

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

type fakeUC struct {
	uc

	imported [][]map[string]any
	migrated [][]string
}

func (f *fakeUC) ImportProfessions(_ context.Context, rows []map[string]any) (*entity.ImportReport, error) {
	f.imported = append(f.imported, rows)
	return &entity.ImportReport{Added: len(rows), Total: len(rows)}, nil
}

func (f *fakeUC) MigrateProfessions(_ context.Context, names []string) (*entity.ImportReport, error) {
	f.migrated = append(f.migrated, names)
	return &entity.ImportReport{Added: len(names), Total: len(names)}, nil
}

func bulkRequest(t *testing.T, id, body string) *router.Request {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/admin/professions/"+id, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "id", Value: id}})
	return &router.Request{Request: req.WithContext(ctx)}
}

func TestBulkProfessions(t *testing.T) {
	t.Run("Import", func(t *testing.T) {
		// Arrange
		fake := &fakeUC{}
		end := &HTTPEndpoint{uc: fake}

		// Act
		resp, err := end.BulkProfessions(bulkRequest(t, "import", `{"professions":[{"nome":"Eletricista"}]}`))

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp == nil || len(fake.imported) != 1 {
			t.Fatalf("expected one import call, got %d", len(fake.imported))
		}
	})

	t.Run("Migrate", func(t *testing.T) {
		// Arrange
		fake := &fakeUC{}
		end := &HTTPEndpoint{uc: fake}

		// Act
		resp, err := end.BulkProfessions(bulkRequest(t, "migrate", `{"professions":["Encanador"]}`))

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp == nil || len(fake.migrated) != 1 {
			t.Fatalf("expected one migrate call, got %d", len(fake.migrated))
		}
	})

	t.Run("UnknownSegment", func(t *testing.T) {
		// Arrange
		end := &HTTPEndpoint{uc: &fakeUC{}}

		// Act
		_, err := end.BulkProfessions(bulkRequest(t, "999", `{}`))

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 404 {
			t.Fatalf("expected status 404, got %d", gerr.StatusCode())
		}
	})
}
