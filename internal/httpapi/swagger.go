//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/lgtm-migrator/mecj-demo/internal/httpapi/docs"
)

// MountSwagger serves the Swagger UI at /swagger/*.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
