package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patient-registry/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty       = errors.New("token is empty")
	ErrSecretEmpty      = errors.New("jwt secret is empty")
	ErrTokenInvalid     = errors.New("token is invalid")
	ErrClaimsIncomplete = errors.New("token claims missing user id")
)

// sessionClaims es el payload que emite el flujo de login (externo a este
// servicio): sub = user id, más name/email para mostrar identidad.
type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier implementa auth.AuthVerifier con HS256 y secreto compartido.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretEmpty
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("token verify failed: %w", err)
	}

	c, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	userID := strings.TrimSpace(c.Subject)
	if userID == "" {
		return auth.Claims{}, ErrClaimsIncomplete
	}

	return auth.Claims{
		UserID: userID,
		Name:   strings.TrimSpace(c.Name),
		Email:  strings.TrimSpace(c.Email),
	}, nil
}

// Sign emite un token de sesión. El login/registro vive fuera de este
// servicio; esto existe para dev/ops y para los tests del verifier.
func (v *Verifier) Sign(userID, name, email string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrClaimsIncomplete
	}

	now := time.Now()
	claims := &sessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(v.secret)
}
