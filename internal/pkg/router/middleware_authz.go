package router

import (
	"log/slog"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/ManecoGomes/busca-social/internal/pkg/jwt"
)

func middlewareAuthorization(enforcer *casbin.Enforcer, publicEndpoints map[string]map[string]struct{}) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enforcer == nil {
				next.ServeHTTP(w, r)
				return
			}

			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			claims := jwt.GetAuth(r.Context())
			if claims == nil {
				writeJSON(w, errorResponse{Error: "Token não fornecido"}, http.StatusUnauthorized)
				return
			}

			allowed, err := enforcer.Enforce(claims.UserRole, path, r.Method)
			if err != nil {
				slog.ErrorContext(r.Context(), "authorization check failed", "error", err, "role", claims.UserRole, "path", path)
				writeJSON(w, errorResponse{Error: "Erro interno do servidor"}, http.StatusInternalServerError)
				return
			}

			if !allowed {
				writeJSON(w, errorResponse{Error: "Acesso negado"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
