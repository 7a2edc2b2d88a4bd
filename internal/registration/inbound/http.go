package inbound

import (
	"github.com/ManecoGomes/busca-social/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/prestadores", end.Submit)

	r.GET("/api/prestadores", end.List)
	r.GET("/api/prestadores/query", end.Query)
	r.GET("/api/prestadores/serial/:serialNumber", end.GetBySerial)
	r.GET("/api/stats", end.Stats)
	r.GET("/api/test-email", end.TestEmail)
}
