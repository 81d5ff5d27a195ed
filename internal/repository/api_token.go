package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"tahsilat_import/internal/config/connections/postgres"
)

// APIToken is a row of the api_tokens table. Tokens are stored as sha256
// hex digests; the plain token only exists on the wire.
type APIToken struct {
	ID        int64
	TokenHash string
	UserID    int64
	ExpiresAt *time.Time
}

type APITokenRepository struct {
	pg *postgres.Postgres
}

func NewAPITokenRepository(pg *postgres.Postgres) *APITokenRepository {
	return &APITokenRepository{pg: pg}
}

func (r *APITokenRepository) FindByPlainToken(ctx context.Context, plainToken string) (*APIToken, error) {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return nil, errors.New("empty token")
	}

	sum := sha256.Sum256([]byte(plainToken))
	hash := hex.EncodeToString(sum[:])

	query := `
		SELECT id, token_hash, user_id, expires_at
		FROM api_tokens
		WHERE token_hash = $1
		  AND (expires_at IS NULL OR expires_at > $2)
		LIMIT 1
	`

	var tok APIToken
	err := r.pg.Pool.QueryRow(ctx, query, hash, time.Now()).Scan(
		&tok.ID, &tok.TokenHash, &tok.UserID, &tok.ExpiresAt,
	)
	if err != nil {
		return nil, errors.New("token not found")
	}
	return &tok, nil
}
