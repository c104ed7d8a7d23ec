package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"wedlock-backend/database"
	"wedlock-backend/middleware"
	"wedlock-backend/models"
	"wedlock-backend/payments"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubScorer returns canned scores keyed by candidate phone.
type stubScorer struct {
	scores map[string]int
}

func (s stubScorer) Score(_ context.Context, _, cand models.Profile) (int, string) {
	if v, ok := s.scores[cand.Phone]; ok {
		return v, "Shared values"
	}
	return 50, "Profiles look compatible based on basic details."
}

type fakeGateway struct {
	failCreate bool
}

func (f *fakeGateway) CreateOrder(receipt string) (*payments.Order, error) {
	if f.failCreate {
		return nil, errors.New("gateway down")
	}
	return &payments.Order{ID: "order_test_1", Amount: 2900, Currency: "INR"}, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "valid-signature"
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.PaymentRecord{}))
	database.DB = db

	Matcher = stubScorer{scores: map[string]int{}}
	Gateway = &fakeGateway{}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", Register)
	api.POST("/matches", GetMatches)
	api.POST("/create-order", CreateOrder)
	api.POST("/verify-payment", VerifyPayment)
	api.POST("/admin-login", AdminLogin)
	api.GET("/admin-stats", middleware.AdminAuth(), AdminStats)
	api.GET("/admin-export", middleware.AdminAuth(), ExportProfiles)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProfile(t *testing.T, p models.Profile) {
	t.Helper()
	if p.Tier == "" {
		p.Tier = models.TierFree
	}
	require.NoError(t, database.DB.Create(&p).Error)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func setTier(phone, tier string) error {
	return database.DB.Model(&models.Profile{}).Where("phone = ?", phone).Update("tier", tier).Error
}

func getProfile(t *testing.T, phone string) models.Profile {
	t.Helper()
	var p models.Profile
	require.NoError(t, database.DB.First(&p, "phone = ?", phone).Error)
	return p
}
