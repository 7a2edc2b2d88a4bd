package inbound

import (
	"net"

	"github.com/ManecoGomes/busca-social/internal/pkg/router"
	"github.com/ManecoGomes/busca-social/internal/registration/entity"
	"github.com/ManecoGomes/busca-social/internal/registration/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// Submit receives a public registration form submission.
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req SubmitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.uc.Submit(r.Context(), usecase.SubmitInput{
		Website:          req.Website,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		RegistrationType: req.RegistrationType,
		Gender:           req.Gender,
		CPF:              req.CPF,
		DisplayName:      req.DisplayName,
		ProfessionCount:  req.ProfessionCount,
		Service1:         req.Service1,
		Service2:         req.Service2,
		Service3:         req.Service3,
		State:            req.State,
		CityRJ:           req.CityRJ,
		CityMG:           req.CityMG,
		Street:           req.Street,
		Description:      req.Description,
		AcceptedTerms:    req.AcceptedTerms,
		SourceIP:         sourceIP(r),
	})
}

// List returns all submissions, newest first.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	items, err := h.uc.ListSubmissions(r.Context())
	if err != nil {
		return nil, err
	}

	return toSubmissionResponses(items), nil
}

// Query returns a filtered page of submissions.
func (h *HTTPEndpoint) Query(r *router.Request) (any, error) {
	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}
	offset, err := r.GetQueryInt32("offset")
	if err != nil {
		return nil, err
	}

	items, err := h.uc.QuerySubmissions(r.Context(), entity.QueryFilter{
		Limit:      limit,
		Offset:     offset,
		State:      r.GetQuery("estado"),
		Profession: r.GetQuery("profissao"),
	})
	if err != nil {
		return nil, err
	}

	return toSubmissionResponses(items), nil
}

// GetBySerial looks a submission up by its public serial number.
func (h *HTTPEndpoint) GetBySerial(r *router.Request) (any, error) {
	serialNumber, err := r.GetParamInt64("serialNumber")
	if err != nil {
		return nil, err
	}

	sub, err := h.uc.GetBySerial(r.Context(), serialNumber)
	if err != nil {
		return nil, err
	}

	return toSubmissionResponse(*sub), nil
}

// Stats returns aggregate counters for the admin dashboard.
func (h *HTTPEndpoint) Stats(r *router.Request) (any, error) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		return nil, err
	}

	professionStats := make([]CountByProfessionResponse, 0, len(stats.ProfessionStats))
	for _, item := range stats.ProfessionStats {
		professionStats = append(professionStats, CountByProfessionResponse{
			Profession: item.Key,
			Count:      item.Count,
		})
	}

	stateStats := make([]CountByStateResponse, 0, len(stats.StateStats))
	for _, item := range stats.StateStats {
		stateStats = append(stateStats, CountByStateResponse{
			State: item.Key,
			Count: item.Count,
		})
	}

	return StatsResponse{
		TotalPrestadores:          stats.TotalSubmissions,
		TotalContacts:             stats.TotalContacts,
		TotalTestimonials:         stats.TotalTestimonials,
		TotalTestimonialsApproved: stats.TotalTestimonialsApproved,
		ProfessionStats:           professionStats,
		StateStats:                stateStats,
	}, nil
}

// TestEmail probes SMTP connectivity.
func (h *HTTPEndpoint) TestEmail(r *router.Request) (any, error) {
	ok := h.uc.TestEmail(r.Context())

	msg := "SMTP connection successful"
	if !ok {
		msg = "SMTP connection failed"
	}

	return TestEmailResponse{Success: ok, Message: msg}, nil
}

func sourceIP(r *router.Request) string {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
