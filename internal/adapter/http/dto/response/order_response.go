package response

import (
	"time"

	"meusdocumentos/internal/domain/entities"
)

type PricingResponse struct {
	BasePrice  int64 `json:"base_price"`
	UrgencyFee int64 `json:"urgency_fee"`
	Total      int64 `json:"total"`
}

type OrderResponse struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	ServiceID     string          `json:"service_id"`
	ServiceName   string          `json:"service_name"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Pricing       PricingResponse `json:"pricing"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`

	EstimatedCompletionDate time.Time `json:"estimated_completion_date"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Reference:     o.ShortRef(),
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		Pricing: PricingResponse{
			BasePrice:  o.Pricing.BasePrice,
			UrgencyFee: o.Pricing.UrgencyFee,
			Total:      o.Pricing.Total,
		},
		Status:                  string(o.Status),
		PaymentStatus:           string(o.PaymentStatus),
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}
