package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tumy/config"
	"tumy/handlers"
	"tumy/services/catalog"
	"tumy/services/checkout"
	"tumy/services/concierge"
	"tumy/services/session"
	"tumy/services/wizard"
	"tumy/store"
)

type captureSink struct {
	records []any
}

func (s *captureSink) Submit(record any) {
	s.records = append(s.records, record)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.AdminAccessKey = "open-sesame"
	config.AppConfig.JWTSecret = "TUMY"

	catalogStore := store.NewCatalog()
	bookingLedger := store.NewBookings()
	sink := &captureSink{}
	conciergeSvc := concierge.NewService("") // fallback mode
	manager := session.NewManager(catalogStore, sink,
		wizard.Config{ProbeDelay: time.Hour, ProcessingDelay: time.Hour},
		checkout.Config{ProcessingDelay: time.Hour, CartClearDelay: time.Hour},
		0,
	)

	router := gin.New()
	RegisterRoutes(router, &handlers.HandlerBundle{
		Sessions:  manager,
		Catalog:   handlers.NewCatalogHandler(catalogStore, catalog.NewSearcher(conciergeSvc)),
		Booking:   handlers.NewBookingHandler(catalogStore),
		Wishlist:  handlers.NewWishlistHandler(catalogStore),
		Cart:      handlers.NewCartHandler(catalogStore),
		Concierge: handlers.NewConciergeHandler(conciergeSvc, catalogStore),
		Profile:   handlers.NewProfileHandler(manager, bookingLedger),
		Admin:     handlers.NewAdminHandler(catalogStore, bookingLedger),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestCatalogListEchoesSessionHeader(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/catalog/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))

	body := decode(t, w)
	assert.Len(t, body["services"], 13)
	assert.Equal(t, []any{"ALL"}, body["selectedCategories"])
}

func TestCategoryToggleIsSessionScoped(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/catalog/categories/toggle", "", gin.H{"category": "LUXURY"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")
	assert.Equal(t, []any{"LUXURY"}, decode(t, w)["selectedCategories"])

	// The same session keeps its selection.
	w = doJSON(t, router, http.MethodGet, "/api/catalog/services", sid, nil)
	body := decode(t, w)
	assert.Equal(t, []any{"LUXURY"}, body["selectedCategories"])
	assert.Len(t, body["services"], 1)

	// A fresh session is unaffected.
	w = doJSON(t, router, http.MethodGet, "/api/catalog/services", "", nil)
	assert.Equal(t, []any{"ALL"}, decode(t, w)["selectedCategories"])
}

func TestSearchShortQueryFiltersBySubstring(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/catalog/search", "", gin.H{"query": "ceramic"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["aiSearchActive"])
	assert.Len(t, body["services"], 2) // Ceramic Coating Elite, Ceramic Window Tinting
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/wishlist/toggle", "", gin.H{"serviceId": "s1"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")
	assert.Equal(t, true, decode(t, w)["liked"])

	w = doJSON(t, router, http.MethodGet, "/api/wishlist", sid, nil)
	assert.Equal(t, []any{"s1"}, decode(t, w)["serviceIds"])

	w = doJSON(t, router, http.MethodPost, "/api/wishlist/toggle", sid, gin.H{"serviceId": "s1"})
	assert.Equal(t, false, decode(t, w)["liked"])

	w = doJSON(t, router, http.MethodPost, "/api/wishlist/toggle", sid, gin.H{"serviceId": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddAndTotals(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", "", gin.H{"productId": "p1"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", sid, gin.H{"productId": "p2"})
	body := decode(t, w)
	totals := body["totals"].(map[string]any)
	assert.InDelta(t, 127800, totals["subtotal"].(float64), 1e-6)
	assert.InDelta(t, 148248, totals["total"].(float64), 1e-6)

	w = doJSON(t, router, http.MethodPost, "/api/cart/checkout", sid, nil)
	assert.Equal(t, "PROCESSING", decode(t, w)["step"])
}

func TestBookingOpenUnknownService(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/booking/open", "", gin.H{"serviceId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/booking/open", "", gin.H{"serviceId": "s1"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")
	booking := decode(t, w)["booking"].(map[string]any)
	assert.Equal(t, "DETAIL", booking["stepName"])
	assert.Equal(t, "CHECKING", booking["availability"])

	w = doJSON(t, router, http.MethodPost, "/api/booking/slot", sid, gin.H{"time": "09:00"})
	booking = decode(t, w)["booking"].(map[string]any)
	assert.Equal(t, "09:00", booking["timeSlot"])

	w = doJSON(t, router, http.MethodPost, "/api/booking/confirm", sid, nil)
	booking = decode(t, w)["booking"].(map[string]any)
	assert.Equal(t, "SUBMITTING", booking["stepName"])
}

func TestConciergeChatFallsBackWithoutCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/ai/chat", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["messages"], 1)

	w = doJSON(t, router, http.MethodPost, "/api/ai/chat", "", gin.H{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode(t, w)["reply"].(map[string]any)
	assert.Equal(t, concierge.FallbackChatErr, reply["text"])
}

func TestRecommendFallsBackWithoutCredentials(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/ai/recommend", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, concierge.FallbackNoCredentials, decode(t, w)["recommendation"])
}

func TestProfileShowsSeedBookings(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alex Kamau", user["name"])
	assert.Len(t, body["bookings"], 2)
}

func TestAdminLoginAndMutations(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/login", "", gin.H{"accessKey": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/login", "", gin.H{"accessKey": "open-sesame"})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	// Mutations without a token are refused.
	w = doJSON(t, router, http.MethodPost, "/api/admin/services", "", gin.H{"title": "New Thing"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/services", bytes.NewBufferString(`{"title":"Jet Ski Detailing"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	svc := decode(t, rec)["service"].(map[string]any)
	assert.Equal(t, "Jet Ski Detailing", svc["title"])
	assert.Equal(t, "1 Hour", svc["duration"])

	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["bookings"], 7)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/bookings/bk-0000/cycle", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
