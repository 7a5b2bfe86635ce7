package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/statement_ingestion/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSetupSwaggerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: false})

	w := serve(r, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"basePath": "/api/v1"`)
	assert.Contains(t, w.Body.String(), "/accounts/{accountID}/imports")
	assert.Contains(t, w.Body.String(), "Statement Ingestion API")
}

func TestSetupSwaggerRoutes_Production(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: true})

	assert.Equal(t, http.StatusNotFound, serve(r, "/swagger/index.html").Code)
}
