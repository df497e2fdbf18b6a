package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parking-tracker-backend/internal/model"
)

func setupSubscriptionRouter(t *testing.T, withDB bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var db *gorm.DB
	var options *webpush.Options
	if withDB {
		var err error
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&model.PushSubscription{}))
		options = &webpush.Options{VAPIDPublicKey: "test_public_key"}
	}

	handler := NewHandler(nil, nil, db, options, nil, nil)
	r := gin.New()
	r.GET("/api/subscriptions", handler.GetSubscription)
	r.PUT("/api/subscriptions", handler.PutSubscription)
	r.DELETE("/api/subscriptions", handler.DeleteSubscription)
	r.GET("/api/vapid_public_key", handler.GetVAPIDPublicKey)
	return r
}

func TestSubscriptionsUnavailableWithoutPushConfig(t *testing.T) {
	router := setupSubscriptionRouter(t, false)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req, _ := http.NewRequest(method, "/api/subscriptions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "method %s", method)
	}
}

func TestPutSubscriptionRejectsMissingFields(t *testing.T) {
	router := setupSubscriptionRouter(t, true)

	req, _ := http.NewRequest(http.MethodPut, "/api/subscriptions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
}

func TestSubscriptionLifecycle(t *testing.T) {
	router := setupSubscriptionRouter(t, true)

	body, _ := json.Marshal(map[string]string{
		"endpoint": "https://push.example.com/abc",
		"p256dh":   "key_material",
		"auth":     "auth_secret",
	})
	req, _ := http.NewRequest(http.MethodPut, "/api/subscriptions", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Replaying the PUT upserts rather than failing on the primary key.
	req, _ = http.NewRequest(http.MethodPut, "/api/subscriptions", bytes.NewReader(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/subscriptions?endpoint=https%3A%2F%2Fpush.example.com%2Fabc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	deleteBody, _ := json.Marshal(map[string]string{"endpoint": "https://push.example.com/abc"})
	req, _ = http.NewRequest(http.MethodDelete, "/api/subscriptions", bytes.NewReader(deleteBody))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/subscriptions?endpoint=https%3A%2F%2Fpush.example.com%2Fabc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVAPIDPublicKey(t *testing.T) {
	router := setupSubscriptionRouter(t, true)

	req, _ := http.NewRequest(http.MethodGet, "/api/vapid_public_key", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"public_key":"test_public_key"}`, w.Body.String())
}

func TestGetVAPIDPublicKeyUnconfigured(t *testing.T) {
	router := setupSubscriptionRouter(t, false)

	req, _ := http.NewRequest(http.MethodGet, "/api/vapid_public_key", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
