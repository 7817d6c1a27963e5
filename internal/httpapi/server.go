package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/static"
	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

// Service defines the model registry methods required by the HTTP API layer.
type Service interface {
	TryGet(slot types.Slot) (classifier.Classifier, error)
	Ready() bool
	Status() types.StatusResponse
}

// Options configures the static mount.
type Options struct {
	Assets *static.Resolver
	// PublicPrefix is the static mount point, e.g. "/public".
	PublicPrefix string
}

const defaultPublicPrefix = "/public"

// NewMux registers /public/*, /predict, /predict-ps, /status, /healthz, /readyz and /metrics.
func NewMux(svc Service, opts Options) http.Handler {
	prefix := opts.PublicPrefix
	if prefix == "" {
		prefix = defaultPublicPrefix
	}

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		origins, methods, headers := corsDefaults()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: methods,
			AllowedHeaders: headers,
			MaxAge:         300,
		}))
	}

	if opts.Assets != nil {
		h := staticHandler(opts.Assets, prefix)
		r.Get(prefix, h)
		r.Get(prefix+"/*", h)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, prefix+"/index.html", http.StatusFound)
		})
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/predict", predictTabular(svc))
	r.Get("/predict-ps", predictSequence(svc))
	r.Get("/status", statusHandler(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// statusHandler reports model readiness.
//
// @Summary      Model readiness
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func statusHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	}
}
