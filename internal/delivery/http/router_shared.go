package http

import (
	"net/http"

	"github.com/glowcare/clinic/pkg/response"
)

// healthCheck serves the per-service liveness endpoint.
func healthCheck(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service,
		})
	}
}

// serviceInfo serves the per-service root banner.
func serviceInfo(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"message": "GlowCare " + service,
			"status":  "running",
		})
	}
}
