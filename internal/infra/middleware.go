package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/relay-service/internal/config"
)

// SessionCookieName is the cookie the web auth collaborator issues.
const SessionCookieName = "relay_session"

// TokenValidator is the slice of the jwt manager the middleware needs.
type TokenValidator interface {
	ValidateSessionToken(tokenString string) (string, error)
	ValidateMobileToken(tokenString string) (string, error)
}

// LoggerHTTP places the service logger into the request context so handlers
// can fetch it with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionAuthHTTP authenticates the web surface: a signed session cookie
// resolves to the caller's user id under config.KeyUUID.
func SessionAuthHTTP(next http.Handler, tokens TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeUnauthorized(w, "missing session")
			return
		}

		userID, err := tokens.ValidateSessionToken(cookie.Value)
		if err != nil {
			writeUnauthorized(w, "invalid session")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerAuthHTTP authenticates the mobile surface: an Authorization bearer
// token resolves to the caller's user id under config.KeyUUID.
func BearerAuthHTTP(next http.Handler, tokens TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		userID, err := tokens.ValidateMobileToken(token)
		if err != nil {
			writeUnauthorized(w, "invalid bearer token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason})
}
