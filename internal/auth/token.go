package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tasklight/tasklight/internal/shared"
)

// Claims embeds the registered JWT claims plus the user identity.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. Verification is
// stateless: validity is determined by signature and expiry alone, with
// no server-side lookup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a token service with the signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token bound to the user identity,
// expiring after the configured lifetime.
func (t *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (t *TokenService) Verify(tokenString string) (shared.Identity, error) {
	if tokenString == "" {
		return shared.Identity{}, shared.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return shared.Identity{}, shared.ErrTokenExpired
		}
		return shared.Identity{}, shared.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID <= 0 {
		return shared.Identity{}, shared.ErrTokenInvalid
	}

	return shared.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
