package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/service"
	"github.com/MKhiriev/money-tracker/internal/store"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newSQLiteRouter wires the real store, services and router on a migrated
// SQLite database.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "integration-key",
			TokenIssuer:   config.DefaultTokenIssuer,
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
			Version:       "test",
		},
		Storage: config.Storage{DB: config.DB{
			Driver:         config.DriverSQLite,
			DSN:            "file:" + filepath.Join(t.TempDir(), "money.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
			MaxOpenConns:   1,
			MaxIdleConns:   1,
			ConnectRetries: 1,
		}},
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func call(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_SQLiteEndToEnd(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	aliceToken := rr.Body.String()
	require.NotEmpty(t, aliceToken)

	rr = call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Alice 2","email":"ALICE@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = call(t, router, http.MethodPost, "/api/Auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = call(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer "+rr.Body.String(), rr.Header().Get("Authorization"))

	rr = call(t, router, http.MethodGet, "/api/Expenses", aliceToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = call(t, router, http.MethodPost, "/api/Expenses", aliceToken,
		`{"description":"Groceries","amount":42.10,"date":"2026-02-01T10:00:00Z","category":"Food"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created models.Expense
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "/api/Expenses/"+created.ID.String(), rr.Header().Get("Location"))

	rr = call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Bob","email":"bob@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	bobToken := rr.Body.String()

	expenseURL := "/api/Expenses/" + created.ID.String()

	rr = call(t, router, http.MethodGet, expenseURL, bobToken, "")
	assert.Equal(t, http.StatusNotFound, rr.Code, "other users must not see the expense")
	rr = call(t, router, http.MethodPut, expenseURL, bobToken, `{"amount":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = call(t, router, http.MethodDelete, expenseURL, bobToken, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(t, router, http.MethodGet, "/api/Expenses", bobToken, "")
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = call(t, router, http.MethodPut, expenseURL, aliceToken, `{"category":"Household"}`)
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	rr = call(t, router, http.MethodGet, expenseURL, aliceToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Expense
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Household", updated.Category)
	assert.Equal(t, "Groceries", updated.Description)
	assert.Equal(t, "42.1", updated.Amount.String())

	rr = call(t, router, http.MethodDelete, expenseURL, aliceToken, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = call(t, router, http.MethodGet, expenseURL, aliceToken, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(t, router, http.MethodGet, "/api/Expenses", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = call(t, router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_LoginFailuresAreUnauthorized(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed email", body: `{"email":"not-an-email","password":"secret"}`},
		{name: "empty password", body: `{"email":"alice@example.com","password":""}`},
		{name: "missing fields", body: `{}`},
		{name: "password over bcrypt limit", body: `{"email":"alice@example.com","password":"` + strings.Repeat("x", 80) + `"}`},
		{name: "unknown email", body: `{"email":"ghost@example.com","password":"secret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := call(t, router, http.MethodPost, "/api/Auth/login", "", tt.body)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "invalid email or password", strings.TrimSpace(rr.Body.String()))
		})
	}

	rr = call(t, router, http.MethodPost, "/api/Auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "unparseable JSON stays a bad request")
}

func TestRouter_CreatedExpenseEqualsStored(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	token := rr.Body.String()

	rr = call(t, router, http.MethodPost, "/api/Expenses", token, `{"description":"Snack","amount":1.234,"category":"Food"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	createdBody := rr.Body.String()

	var created models.Expense
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "1.23", created.Amount.String())
	assert.Zero(t, created.Date.Nanosecond()%int(time.Microsecond))

	rr = call(t, router, http.MethodGet, "/api/Expenses/"+created.ID.String(), token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, createdBody, rr.Body.String())

	rr = call(t, router, http.MethodPost, "/api/Expenses", token, `{"description":"Yacht","amount":10000000000000000,"category":"Fun"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "amount is out of range")
}

func TestRouter_UpdateAcceptsEmptyDescription(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := call(t, router, http.MethodPost, "/api/Auth/register", "", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	token := rr.Body.String()

	rr = call(t, router, http.MethodPost, "/api/Expenses", token, `{"description":"Taxi","amount":12,"category":"Travel"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created models.Expense
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = call(t, router, http.MethodPut, "/api/Expenses/"+created.ID.String(), token, `{"description":""}`)
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	rr = call(t, router, http.MethodGet, "/api/Expenses/"+created.ID.String(), token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Expense
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Empty(t, updated.Description)
	assert.Equal(t, "Travel", updated.Category)
}
