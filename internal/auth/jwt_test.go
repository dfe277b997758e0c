package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(testSecret, "dispatcher-7", "Ana Lim", time.Hour)
	assert.NoError(t, err)

	p, err := Parse(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "dispatcher-7", p.Subject)
	assert.Equal(t, "Ana Lim", p.Name)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, "dispatcher-7", "", time.Hour)

	_, err := Parse(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, _ := GenerateToken(testSecret, "dispatcher-7", "", -time.Minute)

	_, err := Parse(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	c := jwt.RegisteredClaims{Subject: "dispatcher-7", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = Parse(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RequiresSubject(t *testing.T) {
	token, _ := GenerateToken(testSecret, "", "", time.Hour)

	_, err := Parse(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken("", "dispatcher-7", "", time.Hour)
	assert.Error(t, err)
}

func TestActor(t *testing.T) {
	assert.Equal(t, "", Actor(context.Background()))

	ctx := WithPrincipal(context.Background(), &Principal{Subject: "dispatcher-7"})
	assert.Equal(t, "dispatcher-7", Actor(ctx))
}

func TestMiddleware(t *testing.T) {
	valid, _ := GenerateToken(testSecret, "dispatcher-7", "", time.Hour)

	var seen string
	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Actor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"без заголовка", "", http.StatusUnauthorized},
		{"не Bearer", "Basic abc", http.StatusUnauthorized},
		{"пустой токен", "Bearer ", http.StatusUnauthorized},
		{"мусор", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"валидный", "Bearer " + valid, http.StatusOK},
		{"регистр схемы", "bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "dispatcher-7", seen)
			} else {
				assert.Empty(t, seen)
				assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}
