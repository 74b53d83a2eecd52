package cors

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

const preflightMaxAge = 10 * time.Minute

// Middleware разрешает браузерным экранам (продавец, курьер, админ) ходить в API
// с перечисленных origin. Пустой список означает любой origin.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Retry-After", "X-RateLimit-Limit"},
		MaxAge:         int(preflightMaxAge.Seconds()),
	})
}
