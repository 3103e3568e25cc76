package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	storemocks "github.com/Lexv0lk/storefront/gen/mocks/storefront"
	"github.com/Lexv0lk/storefront/internal/pkg/jwt"
	"github.com/Lexv0lk/storefront/internal/storefront/application"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	currentUser = domain.User{ID: "u2", Username: "Alex", Balance: decimal.NewFromInt(500)}
	steve       = domain.User{ID: "u1", Username: "Steve", Balance: decimal.NewFromInt(10)}
	sword       = domain.ChestItem{ID: "it1", Attributes: map[string]any{"name": "Diamond Sword"}}

	nopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type services struct {
	gifts    *storemocks.MockGiftService
	users    *storemocks.MockUserService
	chest    *storemocks.MockChestService
	websites *storemocks.MockWebsiteService
}

type request struct {
	method string
	path   string
	body   any
	header map[string]string
}

// newTestRouter mounts the gift routes behind a stub that authenticates every request
// with the same token, so consecutive requests share one gift session.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *services) {
	t.Helper()

	s := &services{
		gifts:    storemocks.NewMockGiftService(ctrl),
		users:    storemocks.NewMockUserService(ctrl),
		chest:    storemocks.NewMockChestService(ctrl),
		websites: storemocks.NewMockWebsiteService(ctrl),
	}

	registry := application.NewSessionRegistry(application.GiftServices{
		Gifts: s.gifts,
		Users: s.users,
		Chest: s.chest,
	}, time.Hour, nopLogger)
	pages := application.NewGiftPageCase(s.websites, "", "", nopLogger)
	handler := NewGiftHandler(registry, pages, nopLogger)

	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set(jwt.TokenContextKey, "session-token")
		c.Request = c.Request.WithContext(jwt.ContextWithToken(c.Request.Context(), "session-token"))
		c.Next()
	}, NewWebsiteMiddleware(""))
	handler.Register(api)

	return router, s
}

func serve(t *testing.T, router *gin.Engine, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		require.NoError(t, err)
		body = bytes.NewReader(payload)
	}

	recorder := httptest.NewRecorder()
	httpReq := httptest.NewRequest(req.method, req.path, body)
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.header {
		httpReq.Header.Set(key, value)
	}
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var response struct {
		Errors string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	return response.Errors
}

var (
	searchSteve = request{method: http.MethodPost, path: "/api/gift/recipient", body: gin.H{"query": "Steve"}}
	submit      = request{method: http.MethodPost, path: "/api/gift/submit"}
)

func setAmount(amount string) request {
	return request{method: http.MethodPut, path: "/api/gift/amount", body: gin.H{"amount": amount}}
}

func setMode(mode string) request {
	return request{method: http.MethodPut, path: "/api/gift/mode", body: gin.H{"mode": mode}}
}

func selectItem(id string) request {
	return request{method: http.MethodPut, path: "/api/gift/item", body: gin.H{"chestItemId": id}}
}
