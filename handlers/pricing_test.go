package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &PricingHandler{}
	r := gin.New()
	r.POST("/api/pricing/quote", h.QuoteHandler)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandlerRejectsUnknownService(t *testing.T) {
	t.Parallel()

	r := newQuoteRouter()
	w := postQuote(t, r, `{"serviceType":"Window Washing","frequency":"one-time","preview":true}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unknown service type")
}

func TestQuoteHandlerRejectsUnknownFrequency(t *testing.T) {
	t.Parallel()

	r := newQuoteRouter()
	w := postQuote(t, r, `{"serviceType":"Standard","frequency":"fortnightly","preview":true}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unknown frequency")
}

func TestQuoteHandlerPreviewPricesOffline(t *testing.T) {
	t.Parallel()

	r := newQuoteRouter()
	w := postQuote(t, r, `{"serviceType":"Standard","bedrooms":2,"bathrooms":1,"frequency":"one-time","preview":true}`)

	require.Equal(t, http.StatusOK, w.Code)
	// 25000 + 2*2000 + 3000 = 32000, plus the 5000 one-time fee.
	require.Contains(t, w.Body.String(), `"total":37000`)
}
