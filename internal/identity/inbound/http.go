package inbound

import (
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/login", end.Login)
	r.GET("/api/user", end.Profile)
}
