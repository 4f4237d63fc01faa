package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/audit"
	"github.com/vitalcare/clinic-api/internal/config"
)

// Utilidades compartidas por los tests de handlers: base gorm respaldada por
// sqlmock, dispatcher de auditoría y peticiones JSON contra un router gin.

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

// newTestDispatcher usa una base sqlmock aparte: los INSERT de auditoría son
// asíncronos y no deben interferir con las expectativas del test.
func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, _ := newMockDB(t)
	return audit.NewDispatcher(audit.New(db))
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		NavarraFeedURL: "http://feed.invalid",
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
