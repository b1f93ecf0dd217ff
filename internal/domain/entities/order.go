package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of a document request.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents the payment side of an order.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Order is the document request created exactly once per conversation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// The conditional PutItem on id plus the conversation-side idempotency check
// guarantee at most one order per conversation.

type Order struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"service_id"`
	ServiceName   string          `json:"service_name"`
	UserID        string          `json:"user_id,omitempty"`
	Customer      CustomerProfile `json:"customer"`
	Pricing       PricingSnapshot `json:"pricing"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`

	EstimatedCompletionDate time.Time `json:"estimated_completion_date"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// ShortRef is the human-facing order reference shown in the chat
// (last 8 characters of the id, upper-cased).
func (o Order) ShortRef() string {
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// RemainingDays reports the whole days left until the estimated completion
// date, never negative.
func (o Order) RemainingDays(now time.Time) int {
	if o.EstimatedCompletionDate.IsZero() {
		return 0
	}
	d := int(o.EstimatedCompletionDate.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// UpdateRequestKind classifies a support request about an existing order.

type UpdateRequestKind string

const (
	UpdateRequestUrgent   UpdateRequestKind = "urgent"
	UpdateRequestNormal   UpdateRequestKind = "normal"
	UpdateRequestQuestion UpdateRequestKind = "question"
)

// OrderUpdateRequest is the side record persisted when a customer asks for a
// change or raises a question about an order in the support branch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type OrderUpdateRequest struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"order_id"`
	Kind      UpdateRequestKind `json:"kind"`
	Text      string            `json:"text"`
	CreatedAt time.Time         `json:"created_at"`
}
