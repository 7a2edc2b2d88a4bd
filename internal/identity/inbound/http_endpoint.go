package inbound

import (
	"github.com/ManecoGomes/busca-social/internal/identity/usecase"
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Login authenticates an admin account.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req usecase.LoginInput
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Login(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Token: out.Token,
		User:  toUserResponse(out.User),
	}, nil
}

// Profile returns the authenticated account.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	user, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return toUserResponse(*user), nil
}
