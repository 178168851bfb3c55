package utilities

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"critico-backend/internal/model"
)

// ErrInvalidCredential covers every verification failure: bad signature,
// expired token, malformed payload. Callers never learn which.
var ErrInvalidCredential = errors.New("invalid or expired token")

// Claims struct
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer credentials used on every
// request. Tokens are stateless; expiry is the only invalidation.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService builds a service around an injected signing secret so
// tests can run with a deterministic one.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue creates a signed token embedding the user's id and role.
func (ts *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.Email,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify checks the signature and expiry and extracts the claims.
func (ts *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredential
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, ErrInvalidCredential
	}

	return claims, nil
}
