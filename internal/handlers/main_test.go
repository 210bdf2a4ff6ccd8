package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mfialho/dietlog-backend/internal/database"
	"github.com/mfialho/dietlog-backend/internal/middleware"
	"github.com/mfialho/dietlog-backend/internal/routes"
)

// newTestRouter builds the full router backed by a fresh in-memory store,
// migrated from scratch, so every test runs against isolated state.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, "sqlite3"))

	log := logrus.New()
	log.SetOutput(io.Discard)

	r := chi.NewRouter()
	routes.Setup(r, db, log)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// signUpAndIn registers a default account, signs in, and returns the
// identity cookie issued by the session endpoint.
func signUpAndIn(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/users",
		`{"name":"Test User","email":"test@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/sessions",
		`{"email":"test@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.IdentityCookie {
			return c
		}
	}
	t.Fatal("identity cookie was not set")
	return nil
}
