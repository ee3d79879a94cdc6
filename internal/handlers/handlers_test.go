package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omytic/storefront/internal/catalog"
	"github.com/omytic/storefront/internal/config"
	"github.com/omytic/storefront/internal/settings"
	"github.com/omytic/storefront/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared-cache DSN keeps gorm's pooled connections on the
	// same in-memory database while isolating tests from each other.
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Setting{}))
	return db
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPublicProductsPlaceholderFallback(t *testing.T) {
	cfg := &config.Config{} // no credentials

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	PublicProductsHandler(rec, req, cfg, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["placeholder"])
	assert.Len(t, body["fabrics"], 3)
	assert.Len(t, body["others"], 2)
}

func TestPublicProductsFromBackend(t *testing.T) {
	cfg := &config.Config{DatabaseDSN: "host=db", AccessKeyID: "real-key"}
	db := testDB(t)
	svc := catalog.New(db, nil, zap.NewNop())

	for _, p := range []catalog.Input{
		{Name: "Kumaş A", Category: models.CategoryFabric},
		{Name: "Tabanlık", Category: models.CategoryOther},
	} {
		_, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	PublicProductsHandler(rec, req, cfg, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Nil(t, body["placeholder"])
	assert.Len(t, body["fabrics"], 1)
	assert.Len(t, body["others"], 1)
}

func TestPublicSettingsEmitsContactLinks(t *testing.T) {
	cfg := &config.Config{}

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	PublicSettingsHandler(rec, req, cfg, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)

	whatsapp, _ := body["whatsapp_url"].(string)
	assert.True(t, strings.HasPrefix(whatsapp, "https://wa.me/905535886936?text="))

	mailto, _ := body["mailto_url"].(string)
	assert.True(t, strings.HasPrefix(mailto, "mailto:info@omytic.com?subject="))

	recSettings, _ := body["settings"].(map[string]any)
	require.NotNil(t, recSettings)
	assert.Equal(t, "OMY Ticaret - Kaliteli Toptan Ticaret", recSettings["site_title"])
}

func TestCreateProductValidationShortCircuits(t *testing.T) {
	db := testDB(t)
	svc := catalog.New(db, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
		strings.NewReader(`{"name":"","category":"kumaş"}`))
	rec := httptest.NewRecorder()
	CreateProductHandler(rec, req, svc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), catalog.ErrNameRequired.Error())

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateProductPersistsNormalizedRow(t *testing.T) {
	db := testDB(t)
	svc := catalog.New(db, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
		strings.NewReader(`{"name":"Alcantara","category":"kumaş","description":"","features":"Yumuşak\nDayanıklı"}`))
	rec := httptest.NewRecorder()
	CreateProductHandler(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Ürün başarıyla eklendi!", body["message"])

	product, _ := body["product"].(map[string]any)
	require.NotNil(t, product)
	assert.Nil(t, product["description"])
	assert.Equal(t, []any{"Yumuşak", "Dayanıklı"}, product["features"])
}

func TestDashboardStats(t *testing.T) {
	db := testDB(t)
	svc := catalog.New(db, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	DashboardHandler(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 0, body["total_products"])
	assert.Equal(t, "Henüz ürün yok", body["last_added"])
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := settings.New(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings",
		strings.NewReader(`{"phone":"+90 1","announcement_text":"Kampanya","announcement_active":true}`))
	rec := httptest.NewRecorder()
	SaveSettingsHandler(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ayarlar başarıyla kaydedildi!")

	getReq := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	getRec := httptest.NewRecorder()
	GetSettingsHandler(getRec, getReq, svc)

	body := decode(t, getRec)
	stored, _ := body["settings"].(map[string]any)
	require.NotNil(t, stored)
	assert.Equal(t, "+90 1", stored["phone"])
	assert.Equal(t, true, stored["announcement_active"])
}
