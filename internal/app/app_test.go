package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loveadmin_backend/internal/config"
	"loveadmin_backend/internal/dto"
	"loveadmin_backend/internal/logger"
	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// newTestServer boots a router over seeded demo data with the default admin
// account, the same shape Run gives a real client.
func newTestServer(t *testing.T) (*gin.Engine, *memdb.DB) {
	t.Helper()

	cfg := config.Default()
	db := memdb.NewSeeded()
	require.NoError(t, seedAdmin(db, cfg))
	return SetupRouter(cfg, db), db
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@loveadmin.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		token := login(t, router)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "admin@loveadmin.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed email is rejected before lookup", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "not-an-email",
			"password": "admin123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestServer(t)

	paths := []string{
		"/api/stats", "/api/users", "/api/reports", "/api/verifications",
		"/api/events", "/api/messages", "/api/transactions",
		"/api/keys", "/api/logs", "/api/blocklists",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/stats", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	router, _ := newTestServer(t)
	token := login(t, router)

	w := doJSON(router, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats repositories.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 4, stats.ActiveUsers)
	assert.Equal(t, 179.96, stats.TotalRevenue)
	assert.Equal(t, 2, stats.PendingReports)
}

func TestUserEndpoints(t *testing.T) {
	router, db := newTestServer(t)
	token := login(t, router)

	t.Run("list without filter", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/users", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 5)
	})

	t.Run("list active users", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/users?status=Active", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 4)
		for _, u := range users {
			assert.True(t, u.IsActive)
		}
	})

	t.Run("get and partially update one user", func(t *testing.T) {
		userRepo := repositories.NewUserRepository(db)
		sarah, err := userRepo.FindByUsername("sarah_j")
		require.NoError(t, err)

		w := doJSON(router, http.MethodGet, "/api/users/"+sarah.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodPut, "/api/users/"+sarah.ID, token, gin.H{
			"bio": "New bio",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "New bio", updated.Bio)
		assert.Equal(t, sarah.Name, updated.Name)
		assert.Equal(t, sarah.Email, updated.Email)
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/users/no-such-id", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid email in update is 400", func(t *testing.T) {
		userRepo := repositories.NewUserRepository(db)
		sarah, err := userRepo.FindByUsername("sarah_j")
		require.NoError(t, err)

		w := doJSON(router, http.MethodPut, "/api/users/"+sarah.ID, token, gin.H{
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportStatusEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	token := login(t, router)

	reports, err := repositories.NewReportRepository(db).FindAll()
	require.NoError(t, err)

	var pendingID, resolvedID string
	for _, r := range reports {
		switch r.Status {
		case models.ReportStatusPending:
			if pendingID == "" {
				pendingID = r.ID
			}
		case models.ReportStatusResolved:
			resolvedID = r.ID
		}
	}
	require.NotEmpty(t, pendingID)
	require.NotEmpty(t, resolvedID)

	t.Run("pending to banned succeeds", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/reports/"+pendingID, token, gin.H{
			"status": "banned",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("resolved is terminal", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/reports/"+resolvedID, token, gin.H{
			"status": "banned",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown status value", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/reports/"+resolvedID, token, gin.H{
			"status": "escalated",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing status field", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/reports/"+resolvedID, token, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown report", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/reports/no-such-id", token, gin.H{
			"status": "resolved",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListEndpoints(t *testing.T) {
	router, _ := newTestServer(t)
	token := login(t, router)

	tests := []struct {
		path string
		want int
	}{
		{"/api/reports", 3},
		{"/api/verifications", 3},
		{"/api/events", 2},
		{"/api/messages", 2},
		{"/api/transactions", 4},
		{"/api/keys", 3},
		{"/api/blocklists", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, token, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.Len(t, items, tt.want)
		})
	}
}

func TestAPILogGrowsWithTraffic(t *testing.T) {
	router, db := newTestServer(t)
	token := login(t, router)

	logRepo := repositories.NewAPILogRepository(db)
	before, err := logRepo.FindAll()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		w := doJSON(router, http.MethodGet, fmt.Sprintf("/api/users?n=%d", i), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	after, err := logRepo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, len(before)+3, len(after))
}

func TestLogout(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
