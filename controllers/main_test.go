package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crosscheck/config"
	"crosscheck/db"
	"crosscheck/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestServer spins up the full route tree over an in-memory sqlite
// database. One connection only, so every query sees the same memory db.
func newTestServer(t *testing.T) *gin.Engine {
	return newTestServerWithConfig(t, config.Configuration{})
}

func newTestServerWithConfig(t *testing.T, cfg config.Configuration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	database.DB().SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() { database.Close() })

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerLandlord creates a user (and its landlord) and returns the
// auth token.
func registerLandlord(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createTenant(t *testing.T, r *gin.Engine, token, fullName string) int64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/tenants", token, map[string]any{
		"phone_number": "555-0100",
		"email":        "tenant@example.com",
		"full_name":    fullName,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var tenant struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &tenant)
	return tenant.ID
}

func createProperty(t *testing.T, r *gin.Engine, token, street string) int64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/properties", token, map[string]any{
		"street":      street,
		"city":        "Nashville",
		"state":       "TN",
		"postal_code": "37203",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var property struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &property)
	return property.ID
}

func createLease(t *testing.T, r *gin.Engine, token string, tenantID, propertyID int64) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/leases", token, map[string]any{
		"tenant":          tenantID,
		"rented_property": propertyID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
