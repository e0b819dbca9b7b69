// Paquete token: emisión y verificación de tokens de sesión del admin.
// Antes el "login" era un booleano guardado en el browser; ahora el
// servidor firma un token HMAC y lo exige en cada mutación.
package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"poppy-paws/internal/ports/auth"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Manager firma y verifica tokens de sesión con HMAC-SHA256.
// Implementa auth.Verifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token: secret requerido")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue emite un token de sesión para el admin.
func (m *Manager) Issue(subject string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"admin": true,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: firmar: %w", err)
	}
	return signed, nil
}

// Verify valida firma y expiración, y devuelve los claims.
func (m *Manager) Verify(_ context.Context, raw string) (auth.Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}

	out := auth.Claims{}
	if sub, ok := mc["sub"].(string); ok {
		out.Subject = sub
	}
	if adm, ok := mc["admin"].(bool); ok {
		out.Admin = adm
	}
	if exp, ok := mc["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return out, nil
}
