package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalcare/clinic-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(cfg *config.Config, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg, role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uint),
			"role":    c.MustGet(ContextUserRole).(string),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RoleDoctor)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": RoleDoctor,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"doctor"}`, w.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(testConfig(), RoleDoctor)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(testConfig(), RoleDoctor)

	w := doRequest(r, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RoleDoctor)

	token := signToken(t, "otro-secreto", jwt.MapClaims{
		"sub":  7,
		"role": RoleDoctor,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RoleDoctor)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": RoleDoctor,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongRole(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RoleDoctor)

	// token de paciente contra ruta de médico
	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": RolePatient,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	// sin cabecera: se genera un id
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	// con cabecera: se propaga tal cual
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
