package usecase

import (
	"context"
	"log/slog"

	"github.com/ManecoGomes/busca-social/internal/directory/outbound/places"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/samber/lo"
)

const maxGoogleReviews = 3

type GoogleReview struct {
	Name         string
	Rating       int
	Testimony    string
	Time         string
	ProfilePhoto string
	AuthorURL    string
}

type GoogleReviewsOutput struct {
	Reviews       []GoogleReview
	AverageRating float64
	TotalReviews  int64
}

// GoogleReviews proxies the business profile's reviews, trimmed to the three
// most relevant ones the Places API returns.
func (s *Usecase) GoogleReviews(ctx context.Context) (*GoogleReviewsOutput, error) {
	ctx, span := s.startSpan(ctx, "GoogleReviews")
	defer span.End()

	apiKey := s.cfg.GetString("directory.google_places_api_key")
	if apiKey == "" {
		slog.ErrorContext(ctx, "google places api key not configured")
		return nil, goerror.NewServer(nil)
	}

	placeID := s.cfg.GetString("directory.google_place_id")
	details, err := s.repoPlaces.GetDetails(ctx, placeID, apiKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch google reviews", "place_id", placeID, "error", err)
		return nil, goerror.NewServer(err)
	}

	reviews := details.Reviews
	if len(reviews) > maxGoogleReviews {
		reviews = reviews[:maxGoogleReviews]
	}

	return &GoogleReviewsOutput{
		Reviews: lo.Map(reviews, func(r places.Review, _ int) GoogleReview {
			return GoogleReview{
				Name:         r.AuthorName,
				Rating:       r.Rating,
				Testimony:    r.Text,
				Time:         r.RelativeTime,
				ProfilePhoto: r.ProfilePhotoURL,
				AuthorURL:    r.AuthorURL,
			}
		}),
		AverageRating: details.Rating,
		TotalReviews:  details.UserRatingsTotal,
	}, nil
}
