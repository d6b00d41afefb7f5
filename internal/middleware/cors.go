package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"
)

var corsMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPut,
	http.MethodPatch, http.MethodPost, http.MethodDelete,
}

// CORS allows cross-origin access from the given origins ("*" for any).
// Preflights reflect the requested headers. With "*", every response carries
// Access-Control-Allow-Origin, and a plain OPTIONS request is answered with
// 204 instead of reaching the router.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       corsMethods,
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusNoContent,
	})
	allowAll := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") == "" {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ","))
				w.WriteHeader(http.StatusNoContent)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
