package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/api/middleware"
	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/internal/ports"
	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
	"github.com/CalvinKoushik/ecom-backend/internal/service"
	"github.com/CalvinKoushik/ecom-backend/internal/shiprocket"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

const testSecret = "rzp_test_secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type routerMocks struct {
	tokens    *ports.MockTokenProvider
	shipments *ports.MockShipmentCreator
	gateway   *ports.MockGatewayOrderCreator
}

func newTestRouter(t *testing.T, origins ...string) (*gin.Engine, routerMocks) {
	ctrl := gomock.NewController(t)
	mocks := routerMocks{
		tokens:    ports.NewMockTokenProvider(ctrl),
		shipments: ports.NewMockShipmentCreator(ctrl),
		gateway:   ports.NewMockGatewayOrderCreator(ctrl),
	}

	cfg := &config.Config{
		Environment: "test",
		CORS:        config.CORSConfig{AllowedOrigins: origins},
	}
	builder := &shiprocket.PayloadBuilder{
		PickupLocation: shiprocket.DefaultPickupLocation,
		Now:            func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
	svcs := &Services{
		Checkout: service.NewCheckoutService(testSecret, builder, mocks.tokens, mocks.shipments, zap.NewNop()),
		Orders:   service.NewOrderService(mocks.gateway, zap.NewNop()),
	}

	return NewRouter(cfg, svcs, zap.NewNop()), mocks
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func checkoutBody(method, orderID, paymentID, signature string) string {
	body := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
		"paymentMethod":       method,
		"orderDetails": map[string]interface{}{
			"order_number": "ORD-1042",
			"full_name":    "Asha Rao",
			"address_line": "12 MG Road",
			"city":         "Bengaluru",
			"pincode":      "560001",
			"state":        "Karnataka",
			"email":        "asha@example.com",
			"phone":        "9876543210",
			"items":        []interface{}{map[string]interface{}{"name": "Mug", "units": 1}},
			"total":        250,
		},
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/health"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", decode(t, w)["status"])
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_CheckoutCOD(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.tokens.EXPECT().Token(gomock.Any()).Return("tok", nil)
	mocks.shipments.EXPECT().CreateShipment(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload *shiprocket.ShipmentPayload) (json.RawMessage, error) {
			assert.Equal(t, "COD", payload.PaymentMethod)
			assert.Equal(t, "ORD-1042", payload.OrderID)
			return json.RawMessage(`{"shipment_id":280640052}`), nil
		})

	w := do(router, http.MethodPost, "/checkout", checkoutBody("cod", "", "", ""))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"shipment":{"shipment_id":280640052}}`, w.Body.String())
}

func TestRouter_VerifyPaymentPrepaid(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.tokens.EXPECT().Token(gomock.Any()).Return("tok", nil)
	mocks.shipments.EXPECT().CreateShipment(gomock.Any(), "tok", gomock.Any()).
		Return(json.RawMessage(`{"shipment_id":1}`), nil)

	sig := razorpay.Sign("order_1", "pay_1", testSecret)
	w := do(router, http.MethodPost, "/verify-payment", checkoutBody("prepaid", "order_1", "pay_1", sig))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode(t, w)["success"])
}

func TestRouter_CheckoutInvalidSignature(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.tokens.EXPECT().Token(gomock.Any()).Times(0)
	mocks.shipments.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := do(router, http.MethodPost, "/checkout", checkoutBody("prepaid", "order_1", "pay_1", "deadbeef"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid signature"}`, w.Body.String())
}

func TestRouter_CheckoutBadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "unknown payment method", body: checkoutBody("upi", "", "", "")},
		{name: "missing payment method", body: `{"orderDetails":{"order_number":"ORD-1"}}`},
		{name: "missing order number", body: `{"paymentMethod":"cod","orderDetails":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/checkout", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, decode(t, w)["success"])
		})
	}
}

func TestRouter_CheckoutLoginFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.tokens.EXPECT().Token(gomock.Any()).Return("", &errors.AuthError{Err: stderrors.New("Invalid email and password combination")})
	mocks.shipments.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := do(router, http.MethodPost, "/checkout", checkoutBody("cod", "", "", ""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Checkout failed"}`, w.Body.String())
}

func TestRouter_CheckoutProviderFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.tokens.EXPECT().Token(gomock.Any()).Return("tok", nil)
	mocks.shipments.EXPECT().CreateShipment(gomock.Any(), "tok", gomock.Any()).
		Return(nil, &errors.ProviderError{StatusCode: 422, Body: json.RawMessage(`{"message":"Oops! Invalid Data."}`)})

	w := do(router, http.MethodPost, "/checkout", checkoutBody("cod", "", "", ""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Checkout failed","details":{"message":"Oops! Invalid Data."}}`, w.Body.String())
}

func TestRouter_CreateOrder(t *testing.T) {
	router, mocks := newTestRouter(t)

	gatewayOrder := `{"id":"order_9A33XWu170gUtm","entity":"order","amount":49900,"currency":"INR","status":"created"}`
	mocks.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order razorpay.OrderRequest) (json.RawMessage, error) {
			assert.Equal(t, int64(49900), order.Amount)
			return json.RawMessage(gatewayOrder), nil
		})

	w := do(router, http.MethodPost, "/create-order", `{"amount":499}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, gatewayOrder, w.Body.String())
}

func TestRouter_CreateOrderInvalidAmount(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`, `{"amount":"ten"}`} {
		w := do(router, http.MethodPost, "/create-order", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid amount", decode(t, w)["error"], body)
	}
}

func TestRouter_CreateOrderGatewayFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, &errors.GatewayError{StatusCode: 401, Body: json.RawMessage(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`)})

	w := do(router, http.MethodPost, "/create-order", `{"amount":100}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Failed to create order", body["error"])
	assert.NotNil(t, body["details"])
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newTestRouter(t, "https://shop.example.com")

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/checkout", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://shop.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
