package inbound

import (
	"github.com/ManecoGomes/busca-social/internal/directory/usecase"
	"github.com/ManecoGomes/busca-social/internal/pkg/goerror"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// ListCities returns every registered city.
func (h *HTTPEndpoint) ListCities(r *router.Request) (any, error) {
	items, err := h.uc.ListCities(r.Context())
	if err != nil {
		return nil, err
	}

	resp := make([]CityResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCityResponse(item))
	}
	return resp, nil
}

func (h *HTTPEndpoint) CreateCity(r *router.Request) (any, error) {
	var req usecase.CreateCityInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	city, err := h.uc.CreateCity(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return created{payload: toCityResponse(*city)}, nil
}

func (h *HTTPEndpoint) UpdateCity(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req usecase.UpdateCityInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	city, err := h.uc.UpdateCity(r.Context(), id, req)
	if err != nil {
		return nil, err
	}

	return toCityResponse(*city), nil
}

func (h *HTTPEndpoint) DeleteCity(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteCity(r.Context(), id); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) ToggleCity(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	city, err := h.uc.ToggleCity(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toCityResponse(*city), nil
}

// ListActiveProfessions returns the public profession list.
func (h *HTTPEndpoint) ListActiveProfessions(r *router.Request) (any, error) {
	items, err := h.uc.ListActiveProfessions(r.Context())
	if err != nil {
		return nil, err
	}

	return toProfessionResponses(items), nil
}

// SearchProfessions filters the active professions by name.
func (h *HTTPEndpoint) SearchProfessions(r *router.Request) (any, error) {
	items, err := h.uc.SearchProfessions(r.Context(), r.GetParam("query"))
	if err != nil {
		return nil, err
	}

	return toProfessionResponses(items), nil
}

// ListProfessions returns every profession, active or not.
func (h *HTTPEndpoint) ListProfessions(r *router.Request) (any, error) {
	items, err := h.uc.ListProfessions(r.Context())
	if err != nil {
		return nil, err
	}

	return toProfessionResponses(items), nil
}

func (h *HTTPEndpoint) CreateProfession(r *router.Request) (any, error) {
	var req usecase.CreateProfessionInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	prof, err := h.uc.CreateProfession(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return created{payload: toProfessionResponse(*prof)}, nil
}

func (h *HTTPEndpoint) UpdateProfession(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req usecase.UpdateProfessionInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	prof, err := h.uc.UpdateProfession(r.Context(), id, req)
	if err != nil {
		return nil, err
	}

	return toProfessionResponse(*prof), nil
}

func (h *HTTPEndpoint) DeleteProfession(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteProfession(r.Context(), id); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) ToggleProfession(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	prof, err := h.uc.ToggleProfession(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toProfessionResponse(*prof), nil
}

// BulkProfessions multiplexes the import and migrate operations. httprouter
// refuses static siblings next to the :id parameter on the same method tree,
// so both bulk paths are matched through it.
func (h *HTTPEndpoint) BulkProfessions(r *router.Request) (any, error) {
	switch r.GetParam("id") {
	case "import":
		return h.importProfessions(r)
	case "migrate":
		return h.migrateProfessions(r)
	default:
		return nil, goerror.NewBusiness("Endpoint não encontrado", goerror.CodeNotFound)
	}
}

// importProfessions loads professions from spreadsheet-style rows.
func (h *HTTPEndpoint) importProfessions(r *router.Request) (any, error) {
	var req ImportProfessionsRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	report, err := h.uc.ImportProfessions(r.Context(), req.Professions)
	if err != nil {
		return nil, err
	}

	return toImportReportResponse(*report), nil
}

// migrateProfessions inserts a plain list of profession names.
func (h *HTTPEndpoint) migrateProfessions(r *router.Request) (any, error) {
	var req MigrateProfessionsRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	report, err := h.uc.MigrateProfessions(r.Context(), req.Professions)
	if err != nil {
		return nil, err
	}

	return toImportReportResponse(*report), nil
}

// GoogleReviews returns the business profile's top Google reviews.
func (h *HTTPEndpoint) GoogleReviews(r *router.Request) (any, error) {
	out, err := h.uc.GoogleReviews(r.Context())
	if err != nil {
		return nil, err
	}

	return toGoogleReviewsResponse(*out), nil
}

// GetTerms returns the current terms of use document.
func (h *HTTPEndpoint) GetTerms(r *router.Request) (any, error) {
	terms, err := h.uc.GetTerms(r.Context())
	if err != nil {
		return nil, err
	}

	return toTermsResponse(*terms), nil
}

// UpdateTerms replaces the terms of use document.
func (h *HTTPEndpoint) UpdateTerms(r *router.Request) (any, error) {
	var req usecase.UpdateTermsInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	terms, err := h.uc.UpdateTerms(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return toTermsResponse(*terms), nil
}

// CreateContact stores a contact request from the public site.
func (h *HTTPEndpoint) CreateContact(r *router.Request) (any, error) {
	var req usecase.CreateContactInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	contact, err := h.uc.CreateContact(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return created{payload: toContactResponse(*contact)}, nil
}

// ListContacts returns every contact request, newest first.
func (h *HTTPEndpoint) ListContacts(r *router.Request) (any, error) {
	items, err := h.uc.ListContacts(r.Context())
	if err != nil {
		return nil, err
	}

	resp := make([]ContactResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toContactResponse(item))
	}
	return resp, nil
}

// CreateTestimonial stores a testimonial pending approval.
func (h *HTTPEndpoint) CreateTestimonial(r *router.Request) (any, error) {
	var req usecase.CreateTestimonialInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	testimonial, err := h.uc.CreateTestimonial(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return created{payload: toTestimonialResponse(*testimonial)}, nil
}

// ListApprovedTestimonials returns testimonials cleared for display.
func (h *HTTPEndpoint) ListApprovedTestimonials(r *router.Request) (any, error) {
	items, err := h.uc.ListApprovedTestimonials(r.Context())
	if err != nil {
		return nil, err
	}

	resp := make([]TestimonialResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toTestimonialResponse(item))
	}
	return resp, nil
}

// ApproveTestimonial marks a testimonial as visible.
func (h *HTTPEndpoint) ApproveTestimonial(r *router.Request) (any, error) {
	testimonial, err := h.uc.ApproveTestimonial(r.Context(), r.GetParam("id"))
	if err != nil {
		return nil, err
	}

	return toTestimonialResponse(*testimonial), nil
}
