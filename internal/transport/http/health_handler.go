package http

import (
	"net/http"

	"github.com/go-chi/render"
)

// Version is the service version reported by the health endpoint.
const Version = "0.1.0"

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":  "healthy",
		"service": "numclean",
		"version": Version,
	})
}
