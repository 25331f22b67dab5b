package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
)

// tokenTTL is how long an issued bearer token stays valid.
const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the caller identity carried inside a verified token.
type Identity struct {
	ID       uuid.UUID
	Email    string
	Username string
}

type tokenClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with a server-held
// secret. The secret comes from configuration; there is no default.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a 7-day token carrying the user's id, email and username.
func (t *TokenIssuer) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify validates the signature and expiry of a bearer token and
// returns the identity it carries. Any failure yields ErrInvalidToken;
// callers never learn why a token was rejected.
func (t *TokenIssuer) Verify(token string) (*Identity, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:       id,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
