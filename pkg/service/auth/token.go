package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Claims is the token payload. Username carries the account email.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates access tokens.
type TokenIssuer struct {
	cfg *config.Jwt
}

func NewTokenIssuer(cfg *config.Jwt) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

// Issue signs an access token and wraps it in the standard token response.
func (t *TokenIssuer) Issue(u *dto.UserRead, role string) (*dto.TokenResponse, error) {
	now := time.Now()
	expiry := t.cfg.Expiry()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiry.Seconds()),
		User: dto.AuthUser{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     role,
		},
	}, nil
}

// Validate parses a signed token and returns its claims.
func (t *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrMalformedToken
			}
			return []byte(t.cfg.Secret), nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrMalformedToken
	}
	if !token.Valid {
		return nil, domain.ErrMalformedToken
	}
	return claims, nil
}
