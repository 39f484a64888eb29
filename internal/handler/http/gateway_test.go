// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/resolver"
	"github.com/MKhiriev/storefront-gateway/internal/service"
	"github.com/MKhiriev/storefront-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendCall is what the fake backend saw.
type backendCall struct {
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     string
}

// fakeBackend records calls and answers by "METHOD /path".
type fakeBackend struct {
	mu     sync.Mutex
	calls  []backendCall
	routes map[string]fakeAnswer
}

type fakeAnswer struct {
	status      int
	contentType string
	body        string
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls = append(b.calls, backendCall{
		Method:   r.Method,
		Path:     r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Auth:     r.Header.Get("Authorization"),
		Body:     string(body),
	})
	answer, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		answer = fakeAnswer{status: http.StatusNotFound, body: `{"message":"no such route"}`}
	}
	if answer.contentType == "" {
		answer.contentType = "application/json"
	}
	w.Header().Set("Content-Type", answer.contentType)
	w.WriteHeader(answer.status)
	_, _ = io.WriteString(w, answer.body)
}

func (b *fakeBackend) lastCall(t *testing.T) backendCall {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.calls, "backend was not called")
	return b.calls[len(b.calls)-1]
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// newGateway wires the whole stack against a fake backend answering routes.
func newGateway(t *testing.T, routes map[string]fakeAnswer) (http.Handler, *fakeBackend) {
	t.Helper()

	fake := &fakeBackend{routes: routes}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return newGatewayFor(t, srv.URL), fake
}

func newGatewayFor(t *testing.T, origin string) http.Handler {
	t.Helper()

	res, err := resolver.New(origin, "v1")
	require.NoError(t, err)

	cfg := &config.GatewayConfig{
		App:     config.GatewayApp{Version: "1.4.0"},
		Server:  config.GatewayServer{RequestTimeout: 5 * time.Second, PublicURL: "https://shop.example.com"},
		Session: config.GatewaySession{CookieName: "sessionToken"},
	}
	backend := adapter.NewHTTPBackendAdapter(res, 2*time.Second, logger.Nop())
	services, err := service.NewServices(backend, cfg, models.NewAppBuildInfo("v1.4.0", "2026-03-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg, logger.Nop()).Init()
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// Gateway-local routes
// ─────────────────────────────────────────────

func TestGateway_Version(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.4.0","buildVersion":"v1.4.0","buildDate":"2026-03-01","buildCommit":"abc123"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.Zero(t, fake.callCount())
}

func TestGateway_Health(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	assert.Contains(t, rr.Body.String(), `/api/v1"`)
	assert.Contains(t, rr.Body.String(), `"publicUrl":"https://shop.example.com"`)
	assert.Zero(t, fake.callCount())
}

// ─────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────

func TestGateway_PublicProducts(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/products": {status: http.StatusOK, body: `{"success":true,"data":{"items":[{"id":"p1"}],"pagination":{"page":1,"limit":20,"total":1}}}`},
	})

	rr := do(t, h, http.MethodGet, "/api/products/public?page=1&limit=20", "", "Authorization", "Bearer secret")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"id":"p1"}],"pagination":{"page":1,"size":20,"totalElements":1,"totalPages":1}}`, rr.Body.String())

	call := fake.lastCall(t)
	assert.Equal(t, "/api/v1/products", call.Path)
	assert.Equal(t, "limit=20&page=1", call.RawQuery)
	assert.Empty(t, call.Auth, "public listing is anonymous")
}

func TestGateway_AdminProducts(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/products": {status: http.StatusOK, body: `{"data":[{"id":1},{"id":2}],"total":30}`},
	})

	rr := do(t, h, http.MethodGet, "/api/products/admin?q=shoe&categoryId=c1&page=2&size=10", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"id":1},{"id":2}],"pagination":{"page":2,"size":10,"totalElements":30,"totalPages":3}}`, rr.Body.String())
	assert.Equal(t, "category=c1&isVisible=true&limit=10&page=2&search=shoe&status=active", fake.lastCall(t).RawQuery)
}

func TestGateway_AdminProducts_BackendFailure(t *testing.T) {
	h, _ := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/products": {status: http.StatusServiceUnavailable, body: `maintenance`},
	})

	rr := do(t, h, http.MethodGet, "/api/products/admin", "")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"data":[],"message":"Failed to fetch admin products","error":"maintenance"}`, rr.Body.String())
}

func TestGateway_ProductDetail(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/products/p1":      {status: http.StatusOK, body: `{"product":{"id":"p1","name":"Shoe"}}`},
		"GET /api/v1/products/missing": {status: http.StatusNotFound},
	})

	rr := do(t, h, http.MethodGet, "/api/products/public/p1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"id":"p1","name":"Shoe"}}`, rr.Body.String())
	assert.Equal(t, "/api/v1/products/p1", fake.lastCall(t).Path)

	rr = do(t, h, http.MethodGet, "/api/products/public/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"data":null,"message":"Product not found"}`, rr.Body.String())
}

func TestGateway_CreateProduct_ForwardsTokenAndRelaysFailure(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"POST /api/v1/products": {status: http.StatusUnprocessableEntity, body: `{"errors":{"name":"required"}}`},
	})

	rr := do(t, h, http.MethodPost, "/api/products/create", `{"price":1}`, "Cookie", "sessionToken=tok-1")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"errors":{"name":"required"}}`, rr.Body.String())

	call := fake.lastCall(t)
	assert.Equal(t, "Bearer tok-1", call.Auth)
	assert.Equal(t, `{"price":1}`, call.Body)
}

func TestGateway_CreateProduct_InvalidJSON(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodPost, "/api/products/create", `{"price":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid JSON was passed"}`, rr.Body.String())
	assert.Zero(t, fake.callCount())
}

func TestGateway_UpdateDeleteProduct(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"PUT /api/v1/products/p1":    {status: http.StatusAccepted, body: `{"id":"p1"}`},
		"DELETE /api/v1/products/p1": {status: http.StatusForbidden, body: `{"message":"admins only"}`},
	})

	rr := do(t, h, http.MethodPut, "/api/products/p1", `{"name":"X"}`, "Authorization", "Bearer adm")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"p1"}`, rr.Body.String())
	assert.Equal(t, "Bearer adm", fake.lastCall(t).Auth)

	rr = do(t, h, http.MethodDelete, "/api/products/p1", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to delete product","error":"{\"message\":\"admins only\"}"}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// Brands, categories, orders
// ─────────────────────────────────────────────

func TestGateway_Brands(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/brands":  {status: http.StatusOK, body: `{"data":[{"id":"b1"}]}`},
		"POST /api/v1/brands": {status: http.StatusOK, body: `{"id":"b2"}`},
	})

	rr := do(t, h, http.MethodGet, "/api/brands/admin?page=0", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"id":"b1"}]}`, rr.Body.String())
	assert.Equal(t, "limit=50&page=1", fake.lastCall(t).RawQuery)

	rr = do(t, h, http.MethodPost, "/api/brands/admin", `{"name":"Acme"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"b2"}`, rr.Body.String())
}

func TestGateway_Categories_CreateRequiresSession(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"POST /api/v1/categories": {status: http.StatusCreated, body: `{"id":"c1"}`},
	})

	rr := do(t, h, http.MethodPost, "/api/categories", `{"name":"Shoes"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, rr.Body.String())
	assert.Zero(t, fake.callCount())

	rr = do(t, h, http.MethodPost, "/api/categories", `{"name":"Shoes"}`, "Cookie", "sessionToken=tok")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer tok", fake.lastCall(t).Auth)
}

func TestGateway_Categories_ListFailure(t *testing.T) {
	h, _ := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/categories": {status: http.StatusInternalServerError, body: `oops`},
	})

	rr := do(t, h, http.MethodGet, "/api/categories?includeInactive=true", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"data":[],"message":"Failed to fetch categories","error":"oops"}`, rr.Body.String())
}

func TestGateway_GuestOrder(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"POST /api/v1/orders/guest": {status: http.StatusCreated, contentType: "application/json; charset=utf-8", body: `{"orderId":"o1"}`},
	})

	body := `{"customer":{"fullName":"A","phone":"1","address":"B"}}`
	rr := do(t, h, http.MethodPost, "/api/orders/create", body, "Authorization", "Bearer guest")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"orderId":"o1"}`, rr.Body.String())
	assert.Equal(t, "Bearer guest", fake.lastCall(t).Auth)
	assert.Equal(t, body, fake.lastCall(t).Body)
}

func TestGateway_GuestOrder_MissingCustomer(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodPost, "/api/orders/create", `{"customer":{"fullName":"A"}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Thiếu thông tin khách hàng"}`, rr.Body.String())
	assert.Zero(t, fake.callCount())
}

func TestGateway_AdminOrders(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/orders/admin/all": {status: http.StatusOK, body: `{"data":[]}`},
	})

	rr := do(t, h, http.MethodGet, "/api/orders/admin/all", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "page=1&size=10", fake.lastCall(t).RawQuery)
}

// ─────────────────────────────────────────────
// Meta and fallback proxy
// ─────────────────────────────────────────────

func TestGateway_Meta(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/brands/popular":  {status: http.StatusOK, body: `[{"id":"b1"}]`},
		"GET /api/v1/categories/tree": {status: http.StatusOK, body: `{"tree":[]}`},
	})

	rr := do(t, h, http.MethodGet, "/api/meta/brands/popular", "", "Authorization", "Bearer x")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"id":"b1"}]}`, rr.Body.String())
	assert.Empty(t, fake.lastCall(t).Auth)

	rr = do(t, h, http.MethodGet, "/api/meta/categories/tree", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tree":[]}`, rr.Body.String())
}

func TestGateway_Proxy_ResolvesWithoutDoubling(t *testing.T) {
	h, fake := newGateway(t, map[string]fakeAnswer{
		"GET /api/v1/reviews/9":  {status: http.StatusOK, body: `{"id":9}`},
		"PATCH /api/v1/carts/c1": {status: http.StatusAccepted, body: `{}`},
	})

	tests := []struct {
		method string
		target string
		want   string
	}{
		{http.MethodGet, "/api/reviews/9", "/api/v1/reviews/9"},
		{http.MethodGet, "/api/v1/reviews/9", "/api/v1/reviews/9"},
		{http.MethodGet, "/api/v2/reviews/9", "/api/v1/reviews/9"},
		{http.MethodGet, "/api/v1/api/v1/reviews/9", "/api/v1/reviews/9"},
		{http.MethodPatch, "/api/carts/c1", "/api/v1/carts/c1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.target, "")

			assert.Less(t, rr.Code, 300)
			assert.Equal(t, tt.want, fake.lastCall(t).Path)
		})
	}
}

func TestGateway_Proxy_QueryVerbatimAndErrorsRelayed(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodGet, "/api/unknown?x=a%2Fb&y=1", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"no such route"}`, rr.Body.String())
	assert.Equal(t, "x=a%2Fb&y=1", fake.lastCall(t).RawQuery)
}

func TestGateway_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	origin := srv.URL
	srv.Close()
	h := newGatewayFor(t, origin)

	rr := do(t, h, http.MethodGet, "/api/products/public", "")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
	assert.Contains(t, rr.Body.String(), `"message":"Failed to fetch products"`)

	rr = do(t, h, http.MethodPut, "/api/brands/b1", `{}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestGateway_NotFoundOutsideAPI(t *testing.T) {
	h, fake := newGateway(t, nil)

	rr := do(t, h, http.MethodGet, "/index.html", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, fake.callCount())
}
