package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-admin-backend/database"
)

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A pooled :memory: connection per conn means separate databases; pin to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	d := database.New(db)
	require.NoError(t, d.AutoMigrate())
	d.Seed()

	return d
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	c := map[string]string{
		"SESSION_SECRET": "test-session-secret",
	}
	return newRouter(newTestDatabase(t), withConfig(c), withStartupTime(time.Now()))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// loginAdmin authenticates with the seeded credentials and returns the
// session cookie.
func loginAdmin(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}
