package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kickmyb/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// ErrTokenNotFound is returned when a refresh token is absent from the store.
var ErrTokenNotFound = errors.New("refresh token not found")

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uint, username string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

type refreshTokenData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	if err := s.cache.SetJSON(ctx, refreshTokenKeyPrefix+tokenID, refreshTokenData{UserID: userID, Username: username}, ttl); err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	var data refreshTokenData
	if !s.cache.GetJSON(ctx, refreshTokenKeyPrefix+tokenID, &data) {
		return 0, "", ErrTokenNotFound
	}
	return data.UserID, data.Username, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
