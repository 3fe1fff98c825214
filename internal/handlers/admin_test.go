// internal/handlers/admin_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/config"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
)

// Media object keys carry a folder prefix ("properties/<name>.jpg"), so the
// delete route must accept a slash inside the key segment.
func TestDeleteMediaRouteAcceptsFolderPrefixedKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storageService, err := services.NewStorageService(&config.Config{})
	require.NoError(t, err)
	handler := NewAdminHandler(services.NewAdminService(nil), storageService)

	r := gin.New()
	r.DELETE("/v1/admin/media/*key", handler.DeleteMedia)

	req, _ := http.NewRequest("DELETE", "/v1/admin/media/properties/1700000000-abc.jpg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The request must reach the handler; without credentials the storage
	// service is disabled, so the handler answers 503 rather than gin 404.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeleteMediaMissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storageService, err := services.NewStorageService(&config.Config{})
	require.NoError(t, err)
	handler := NewAdminHandler(services.NewAdminService(nil), storageService)

	r := gin.New()
	r.DELETE("/v1/admin/media/*key", handler.DeleteMedia)

	req, _ := http.NewRequest("DELETE", "/v1/admin/media/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
