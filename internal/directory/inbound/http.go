package inbound

import (
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// public site
	r.GET("/api/professions", end.ListActiveProfessions)
	r.GET("/api/professions/search/:query", end.SearchProfessions)
	r.GET("/api/terms-of-use", end.GetTerms)
	r.GET("/api/testimonials", end.ListApprovedTestimonials)
	r.GET("/api/google-reviews", end.GoogleReviews)
	r.POST("/api/contacts", end.CreateContact)
	r.POST("/api/testimonials", end.CreateTestimonial)

	// admin panel
	r.GET("/api/admin/cities", end.ListCities)
	r.POST("/api/admin/cities", end.CreateCity)
	r.PATCH("/api/admin/cities/:id", end.UpdateCity)
	r.DELETE("/api/admin/cities/:id", end.DeleteCity)
	r.POST("/api/admin/cities/:id/toggle", end.ToggleCity)

	r.GET("/api/admin/professions", end.ListProfessions)
	r.POST("/api/admin/professions", end.CreateProfession)
	r.PATCH("/api/admin/professions/:id", end.UpdateProfession)
	r.DELETE("/api/admin/professions/:id", end.DeleteProfession)
	r.POST("/api/admin/professions/:id", end.BulkProfessions)
	r.POST("/api/admin/professions/:id/toggle", end.ToggleProfession)

	r.PUT("/api/admin/terms-of-use", end.UpdateTerms)
	r.GET("/api/contacts", end.ListContacts)
	r.PATCH("/api/testimonials/:id/approve", end.ApproveTestimonial)
}
