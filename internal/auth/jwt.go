package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("отсутствует токен авторизации")
	ErrInvalidToken = errors.New("недействительный токен")
)

// Principal - аутентифицированный пользователь из JWT.
type Principal struct {
	Subject string // идентификатор, попадает в updatedBy
	Name    string
}

type principalKey struct{}

type claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// WithPrincipal сохраняет пользователя в контексте.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext извлекает пользователя из контекста (если он есть).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// Actor возвращает идентификатор пользователя или пустую строку.
func Actor(ctx context.Context) string {
	if p, ok := FromContext(ctx); ok {
		return p.Subject
	}
	return ""
}

// GenerateToken выпускает HS256-токен для subject.
func GenerateToken(secret, subject, name string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("пустой секрет JWT")
	}
	now := time.Now()
	c := claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Parse проверяет подпись и срок действия токена.
func Parse(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("пустой секрет JWT")
	}

	c := &claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("неожиданный алгоритм подписи")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Principal{Subject: c.Subject, Name: c.Name}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// Middleware пропускает запрос дальше только с валидным Bearer-токеном.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := bearerToken(r)
			if err != nil {
				unauthorized(w)
				return
			}
			p, err := Parse(tokenStr, secret)
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
