package inbound

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ManecoGomes/busca-social/internal/directory/entity"
	"github.com/ManecoGomes/busca-social/internal/directory/usecase"
)

// created wraps a payload so the router writes it with a 201 status.
type created struct {
	payload any
}

func (c created) StatusCode() int { return http.StatusCreated }

func (c created) MarshalJSON() ([]byte, error) { return json.Marshal(c.payload) }

type CityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	IsActive  int       `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCityResponse(c entity.City) CityResponse {
	return CityResponse{
		ID:        c.ID,
		Name:      c.Name,
		State:     c.State,
		IsActive:  boolToInt(c.IsActive),
		CreatedAt: c.CreatedAt,
	}
}

type ProfessionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsActive  int       `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProfessionResponse(p entity.Profession) ProfessionResponse {
	return ProfessionResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		IsActive:  boolToInt(p.IsActive),
		CreatedAt: p.CreatedAt,
	}
}

func toProfessionResponses(items []entity.Profession) []ProfessionResponse {
	resp := make([]ProfessionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toProfessionResponse(item))
	}
	return resp
}

type TermsResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy *int64    `json:"updatedBy"`
}

func toTermsResponse(t entity.TermsOfUse) TermsResponse {
	return TermsResponse{
		ID:        t.ID,
		Content:   t.Content,
		UpdatedAt: t.UpdatedAt,
		UpdatedBy: t.UpdatedBy,
	}
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toContactResponse(c entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Category:  c.Category,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

type TestimonialResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Testimony  string    `json:"testimony"`
	Rating     int       `json:"rating"`
	IsApproved int       `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toTestimonialResponse(t entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:         t.ID,
		Name:       t.Name,
		Profession: t.Profession,
		Testimony:  t.Testimony,
		Rating:     t.Rating,
		IsApproved: boolToInt(t.IsApproved),
		CreatedAt:  t.CreatedAt,
	}
}

type ImportReportResponse struct {
	Added        int      `json:"added"`
	Skipped      int      `json:"skipped"`
	Errors       int      `json:"errors"`
	Total        int      `json:"total"`
	ErrorDetails []string `json:"errorDetails"`
}

func toImportReportResponse(r entity.ImportReport) ImportReportResponse {
	details := r.ErrorDetails
	if details == nil {
		details = []string{}
	}

	return ImportReportResponse{
		Added:        r.Added,
		Skipped:      r.Skipped,
		Errors:       r.Errors,
		Total:        r.Total,
		ErrorDetails: details,
	}
}

// ImportProfessionsRequest carries spreadsheet-style rows.
type ImportProfessionsRequest struct {
	Professions []map[string]any `json:"professions"`
}

// MigrateProfessionsRequest carries a plain list of names.
type MigrateProfessionsRequest struct {
	Professions []string `json:"professions"`
}

// GoogleReviewResponse is one proxied Google review in the site's shape.
type GoogleReviewResponse struct {
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Testimony    string `json:"testimony"`
	Time         string `json:"time"`
	ProfilePhoto string `json:"profilePhoto"`
	AuthorURL    string `json:"authorUrl"`
}

type GoogleReviewsResponse struct {
	Reviews       []GoogleReviewResponse `json:"reviews"`
	AverageRating float64                `json:"averageRating"`
	TotalReviews  int64                  `json:"totalReviews"`
}

func toGoogleReviewsResponse(out usecase.GoogleReviewsOutput) GoogleReviewsResponse {
	reviews := make([]GoogleReviewResponse, 0, len(out.Reviews))
	for _, r := range out.Reviews {
		reviews = append(reviews, GoogleReviewResponse{
			Name:         r.Name,
			Rating:       r.Rating,
			Testimony:    r.Testimony,
			Time:         r.Time,
			ProfilePhoto: r.ProfilePhoto,
			AuthorURL:    r.AuthorURL,
		})
	}

	return GoogleReviewsResponse{
		Reviews:       reviews,
		AverageRating: out.AverageRating,
		TotalReviews:  out.TotalReviews,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
