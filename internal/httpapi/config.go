package httpapi

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

func corsDefaults() (origins, methods, headers []string) {
	origins, methods, headers = corsAllowedOrigins, corsAllowedMethods, corsAllowedHeaders
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	if len(methods) == 0 {
		methods = []string{"GET", "OPTIONS"}
	}
	if len(headers) == 0 {
		headers = []string{"Accept", "Content-Type", "X-Log-Level"}
	}
	return origins, methods, headers
}
