package handlers

import (
	"errors"
	"log"
	"net/http"

	response "meusdocumentos/internal/adapter/http/dto/response"
	"meusdocumentos/internal/usecase"
	"meusdocumentos/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for document orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[order][handler] get start order_id=%s", id)

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] get success order_id=%s status=%s", id, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConfirmPayment marks the order as paid and moves it to processing. Wired
// to the payment provider's confirmation hook.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[order][handler] confirm-payment start order_id=%s", id)

	order, err := h.usecase.ConfirmPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] confirm-payment failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] confirm-payment success order_id=%s payment_status=%s", id, order.PaymentStatus)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderInput), errors.Is(err, usecase.ErrInvalidUpdateRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CONFIRMED", "Order payment already confirmed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
