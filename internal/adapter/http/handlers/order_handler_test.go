package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meusdocumentos/internal/adapter/http/handlers/mocks"
	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleOrder() entities.Order {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:          "abcdef1234567890",
		ServiceID:   "svc-1",
		ServiceName: "Certidão de Nascimento",
		Customer: entities.CustomerProfile{
			Name:  "Maria Silva",
			TaxID: "12345678901",
			Phone: "11988887777",
			Email: "maria@example.com",
		},
		Pricing:                 entities.PricingSnapshot{BasePrice: 8990, Total: 8990},
		Status:                  entities.OrderStatusPending,
		PaymentStatus:           entities.PaymentStatusPending,
		CreatedAt:               now,
		UpdatedAt:               now,
		EstimatedCompletionDate: now.AddDate(0, 0, 5),
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		order := sampleOrder()
		uc.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+order.ID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["reference"] != order.ShortRef() {
			t.Fatalf("expected reference %s, got %v", order.ShortRef(), body["reference"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		order := sampleOrder()
		order.Status = entities.OrderStatusProcessing
		order.PaymentStatus = entities.PaymentStatusPaid
		uc.EXPECT().ConfirmPayment(gomock.Any(), order.ID).Return(order, nil)

		r := gin.New()
		r.POST("/v1/orders/:id/payment/confirm", h.ConfirmPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+order.ID+"/payment/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_status"] != string(entities.PaymentStatusPaid) {
			t.Fatalf("expected paid status, got %v", body["payment_status"])
		}
	})

	t.Run("already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "abc").Return(entities.Order{}, usecase.ErrOrderAlreadyConfirmed)

		r := gin.New()
		r.POST("/v1/orders/:id/payment/confirm", h.ConfirmPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/abc/payment/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"invalid order id", usecase.ErrInvalidOrderID, "INVALID_REQUEST", http.StatusBadRequest},
		{"invalid input", usecase.ErrInvalidOrderInput, "INVALID_REQUEST", http.StatusBadRequest},
		{"invalid update request", usecase.ErrInvalidUpdateRequest, "INVALID_REQUEST", http.StatusBadRequest},
		{"not found", usecase.ErrOrderNotFound, "ORDER_NOT_FOUND", http.StatusNotFound},
		{"already confirmed", usecase.ErrOrderAlreadyConfirmed, "ORDER_ALREADY_CONFIRMED", http.StatusConflict},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapOrderError(tc.err)
			if appErr.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, appErr.Code)
			}
			if appErr.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, appErr.HTTPStatus)
			}
		})
	}
}
