package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a valid token is used for the other purpose.
var ErrWrongTokenType = errors.New("wrong token type")

// Claims represents JWT claims.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateAccessToken generates a new access token for the user.
func (s *JWTService) GenerateAccessToken(userID uint, username string) (string, error) {
	return s.sign(s.claims(TokenTypeAccess, userID, username, "", AccessTokenExpiry))
}

// GenerateRefreshToken generates a new refresh token for the user.
// The refresh token ID is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(userID uint, username string) (tokenID string, token string, err error) {
	tokenID = uuid.New().String()
	token, err = s.sign(s.claims(TokenTypeRefresh, userID, username, tokenID, RefreshTokenExpiry))
	return tokenID, token, err
}

// ValidateToken validates signature and lifetime of a token of either type.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return token.Claims.(*Claims), nil
}

// ParseAccessToken parses an access token for the echo JWT middleware.
// Refresh tokens are rejected.
func (s *JWTService) ParseAccessToken(tokenString string) (*jwt.Token, error) {
	token, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if token.Claims.(*Claims).Type != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	return token, nil
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}
	if claims.ID == "" {
		return nil, errors.New("token ID not found")
	}
	return claims, nil
}

func (s *JWTService) parse(tokenString string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	if _, ok := token.Claims.(*Claims); !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return token, nil
}

// ExtractTokenID extracts the token ID (JTI) from a refresh token.
func (s *JWTService) ExtractTokenID(tokenString string) (string, error) {
	claims, err := s.ValidateRefreshToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}

func (s *JWTService) claims(tokenType string, userID uint, username, tokenID string, ttl time.Duration) *Claims {
	now := s.now()
	return &Claims{
		UserID:   userID,
		Username: username,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
