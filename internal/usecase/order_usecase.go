package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrderInput     = errors.New("invalid order input")
	ErrInvalidUpdateRequest  = errors.New("invalid update request")
	ErrOrderAlreadyConfirmed = errors.New("order payment already confirmed")
)

// CreateOrderInput carries everything collected by the conversation when the
// customer confirms.

type CreateOrderInput struct {
	Service  entities.Service
	Customer entities.CustomerProfile
	Pricing  entities.PricingSnapshot
	UserID   string
}

// IOrderUseCase is the order-ledger side of the intake flow: create exactly
// once, look up, confirm payment, and record support requests.

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ConfirmPayment(ctx context.Context, id string) (entities.Order, error)
	CreateUpdateRequest(ctx context.Context, orderID, text string) (entities.OrderUpdateRequest, error)
	ListUpdateRequests(ctx context.Context, orderID string) ([]entities.OrderUpdateRequest, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	requests interfaces.IOrderUpdateRequestRepository
	notifier interfaces.IOrderNotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, requests interfaces.IOrderUpdateRequestRepository, notifier interfaces.IOrderNotifier) *OrderUseCase {
	return &OrderUseCase{repo: repo, requests: requests, notifier: notifier}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if in.Service.ID == "" || !in.Customer.Complete() || in.Pricing.Total <= 0 {
		log.Printf("[order][usecase] create rejected service_id=%q profile_complete=%t total=%d", in.Service.ID, in.Customer.Complete(), in.Pricing.Total)
		return entities.Order{}, ErrInvalidOrderInput
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:                      uuid.NewString(),
		ServiceID:               in.Service.ID,
		ServiceName:             in.Service.Name,
		UserID:                  in.UserID,
		Customer:                in.Customer,
		Pricing:                 in.Pricing,
		Status:                  entities.OrderStatusPending,
		PaymentStatus:           entities.PaymentStatusPending,
		EstimatedCompletionDate: now.AddDate(0, 0, in.Service.EstimatedDays),
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed service_id=%s err=%v", in.Service.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s service_id=%s total=%d", created.ID, created.ServiceID, created.Pricing.Total)

	if u.notifier != nil {
		if err := u.notifier.OrderCreated(ctx, created); err != nil {
			// Email is a courtesy, never a reason to fail the order.
			log.Printf("[order][usecase] order-created email failed order_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ConfirmPayment is the settlement hook: it flips payment to paid and moves
// the order into processing. Confirming an already-paid order is reported,
// not silently repeated.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return o, ErrOrderAlreadyConfirmed
	}

	updated, err := u.repo.UpdateStatuses(ctx, o.ID, entities.OrderStatusProcessing, entities.PaymentStatusPaid)
	if err != nil {
		log.Printf("[order][usecase] confirm-payment failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] confirm-payment success order_id=%s", updated.ID)

	if u.notifier != nil {
		if err := u.notifier.PaymentConfirmed(ctx, updated); err != nil {
			log.Printf("[order][usecase] payment-confirmed email failed order_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func (u *OrderUseCase) CreateUpdateRequest(ctx context.Context, orderID, text string) (entities.OrderUpdateRequest, error) {
	orderID = strings.TrimSpace(orderID)
	text = strings.TrimSpace(text)
	if orderID == "" || text == "" {
		return entities.OrderUpdateRequest{}, ErrInvalidUpdateRequest
	}

	req := entities.OrderUpdateRequest{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Kind:      ClassifyUpdateRequest(text),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.requests.Create(ctx, req)
	if err != nil {
		log.Printf("[order][usecase] update-request failed order_id=%s err=%v", orderID, err)
		return entities.OrderUpdateRequest{}, err
	}
	log.Printf("[order][usecase] update-request recorded order_id=%s kind=%s", orderID, created.Kind)
	return created, nil
}

func (u *OrderUseCase) ListUpdateRequests(ctx context.Context, orderID string) ([]entities.OrderUpdateRequest, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.requests.ListByOrderID(ctx, orderID)
}

// ClassifyUpdateRequest buckets a support message: urgency keywords win,
// question marks and doubt keywords come next, everything else is normal.
func ClassifyUpdateRequest(text string) entities.UpdateRequestKind {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "urgente") || strings.Contains(lower, "urgência") || strings.Contains(lower, "urgencia"):
		return entities.UpdateRequestUrgent
	case strings.Contains(lower, "?") || strings.Contains(lower, "dúvida") || strings.Contains(lower, "duvida"):
		return entities.UpdateRequestQuestion
	default:
		return entities.UpdateRequestNormal
	}
}
