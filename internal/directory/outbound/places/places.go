// Package places fetches place details and reviews from the Google Places API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

// Review is one user review of a place.
type Review struct {
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Rating          int    `json:"rating"`
	RelativeTime    string `json:"relative_time_description"`
	Text            string `json:"text"`
}

// Details is the subset of place details the site consumes.
type Details struct {
	Reviews          []Review `json:"reviews"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int64    `json:"user_ratings_total"`
}

type detailsResponse struct {
	Status string  `json:"status"`
	Result Details `json:"result"`
}

// Client reads place details from the Google Places Details endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	ins     instrument.Instrumentation
}

// NewClient returns a Client with the given per-request timeout.
func NewClient(timeout time.Duration, ins instrument.Instrumentation) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
		ins:     ins,
	}
}

// GetDetails fetches reviews and rating aggregates for placeID, localized to
// Brazilian Portuguese. A non-OK API status is a failure.
func (c *Client) GetDetails(ctx context.Context, placeID, apiKey string) (_ *Details, err error) {
	ctx, span := c.ins.Tracer("directory.outbound.places").Start(ctx, "GetDetails")
	span.SetAttributes(attribute.String("places.place_id", placeID))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", "reviews,rating,user_ratings_total")
	query.Set("key", apiKey)
	query.Set("language", "pt-BR")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api responded with status %d", resp.StatusCode)
	}

	var body detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("places api error: %s", body.Status)
	}

	return &body.Result, nil
}
