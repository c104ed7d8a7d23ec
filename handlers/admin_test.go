package handlers

import (
	"net/http"
	"testing"

	"wedlock-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setAdminEnv(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("API_SECRET", "test-secret")
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)
	setAdminEnv(t, "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/admin-login", map[string]string{"password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginDisabledWithoutHash(t *testing.T) {
	r := setupRouter(t)
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	w := doJSON(t, r, http.MethodPost, "/api/admin-login", map[string]string{"password": "anything"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminStatsRequiresToken(t *testing.T) {
	r := setupRouter(t)
	setAdminEnv(t, "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/admin-stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin-stats", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginAndStats(t *testing.T) {
	r := setupRouter(t)
	setAdminEnv(t, "admin123")
	seedProfile(t, models.Profile{Phone: "9990001111", Name: "Asha", Gender: "Female"})
	seedProfile(t, models.Profile{Phone: "8880002222", Name: "Raj", Gender: "Male", Tier: models.TierGold})

	w := doJSON(t, r, http.MethodPost, "/api/admin-login", map[string]string{"password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decodeJSON(t, w, &login)
	require.True(t, login.Success)
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodGet, "/api/admin-stats", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Count int              `json:"count"`
		Gold  int              `json:"gold"`
		Users []models.Profile `json:"users"`
	}
	decodeJSON(t, w, &stats)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 1, stats.Gold)
	assert.Len(t, stats.Users, 2)
}

func TestAdminExport(t *testing.T) {
	r := setupRouter(t)
	setAdminEnv(t, "admin123")
	seedProfile(t, models.Profile{Phone: "9990001111", Name: "Asha", Gender: "Female"})

	w := doJSON(t, r, http.MethodPost, "/api/admin-login", map[string]string{"password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &login)

	w = doJSON(t, r, http.MethodGet, "/api/admin-export", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
