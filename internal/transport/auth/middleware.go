package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"tahsilat_import/internal/repository"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

type TokenRepo interface {
	FindByPlainToken(ctx context.Context, plainToken string) (*repository.APIToken, error)
}

// TokenMiddleware authenticates requests by bearer token (header first,
// then the token query parameter) and stores the user id in the context.
func TokenMiddleware(tokenRepo TokenRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// CORS preflight passes through unauthenticated.
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			var tok *repository.APIToken

			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				plain := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
				if plain != "" {
					t, err := tokenRepo.FindByPlainToken(r.Context(), plain)
					if err == nil {
						tok = t
					} else {
						log.Printf("[AUTH] token lookup (header) error: %v", err)
					}
				}
			}

			if tok == nil {
				if plain := r.URL.Query().Get("token"); plain != "" {
					t, err := tokenRepo.FindByPlainToken(r.Context(), plain)
					if err == nil {
						tok = t
					} else {
						log.Printf("[AUTH] token lookup (query) error: %v", err)
					}
				}
			}

			if tok == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if tok.ExpiresAt != nil && tok.ExpiresAt.Before(time.Now()) {
				http.Error(w, "Token expired", http.StatusUnauthorized)
				return
			}

			uid := fmt.Sprintf("%d", tok.UserID)
			ctx := context.WithValue(r.Context(), UserIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (string, error) {
	v, ok := ctx.Value(UserIDKey).(string)
	if !ok || v == "" {
		return "", errors.New("userID not found in context")
	}
	return v, nil
}
