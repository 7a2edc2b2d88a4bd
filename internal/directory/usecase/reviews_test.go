package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ManecoGomes/busca-social/internal/directory/outbound/places"
	"github.com/ManecoGomes/busca-social/internal/pkg/config"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"github.com/ManecoGomes/busca-social/internal/pkg/validator"
)

type fakePlaces struct {
	details *places.Details
	err     error

	placeID string
	apiKey  string
}

func (f *fakePlaces) GetDetails(_ context.Context, placeID, apiKey string) (*places.Details, error) {
	f.placeID = placeID
	f.apiKey = apiKey
	return f.details, f.err
}

func newReviewsUsecase(t *testing.T, repo *fakePlaces, cfgYAML string) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(cfgYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return NewDirectory(Dependency{
		RepoPlaces: repo,
		Config:     cfg,
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})
}

const reviewsConfigYAML = `
directory:
  google_place_id: place-1
  google_places_api_key: key-1
`

func TestGoogleReviews(t *testing.T) {
	t.Run("TopThreeWithAggregates", func(t *testing.T) {
		// Arrange
		repo := &fakePlaces{details: &places.Details{
			Rating:           4.6,
			UserRatingsTotal: 40,
			Reviews: []places.Review{
				{AuthorName: "Ana", Rating: 5, Text: "Excelente!", RelativeTime: "há uma semana"},
				{AuthorName: "Bruno", Rating: 5, Text: "Muito bom."},
				{AuthorName: "Carla", Rating: 4, Text: "Recomendo."},
				{AuthorName: "Davi", Rating: 3, Text: "Ok."},
			},
		}}
		uc := newReviewsUsecase(t, repo, reviewsConfigYAML)

		// Act
		out, err := uc.GoogleReviews(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Reviews) != 3 {
			t.Fatalf("expected top three reviews, got %d", len(out.Reviews))
		}
		if out.Reviews[0].Name != "Ana" || out.Reviews[0].Testimony != "Excelente!" {
			t.Fatalf("unexpected first review %+v", out.Reviews[0])
		}
		if out.AverageRating != 4.6 || out.TotalReviews != 40 {
			t.Fatalf("unexpected aggregates %+v", out)
		}
		if repo.placeID != "place-1" || repo.apiKey != "key-1" {
			t.Fatalf("expected configured place and key, got %q/%q", repo.placeID, repo.apiKey)
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		// Arrange
		uc := newReviewsUsecase(t, &fakePlaces{}, "{}")

		// Act
		_, err := uc.GoogleReviews(context.Background())

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 500 {
			t.Fatalf("expected status 500, got %d", gerr.StatusCode())
		}
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		// Arrange
		repo := &fakePlaces{err: errors.New("places api error: OVER_QUERY_LIMIT")}
		uc := newReviewsUsecase(t, repo, reviewsConfigYAML)

		// Act
		_, err := uc.GoogleReviews(context.Background())

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected structured error, got %v", err)
		}
		if gerr.StatusCode() != 500 {
			t.Fatalf("expected status 500, got %d", gerr.StatusCode())
		}
	})
}
