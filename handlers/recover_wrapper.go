package handlers

import (
	"log"
	"net/http"
	"runtime"

	"transportledger/services"
)

// RecoverWrapper wraps an http.Handler with panic recovery
func RecoverWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Printf("[HTTP] panic recovered on %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)
				writeJSON(w, http.StatusInternalServerError, ApiResponse{
					Success: false,
					Code:    services.KindInternal,
					Error:   "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
