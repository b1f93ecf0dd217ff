package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces

// PaymentInput is the request handed to the payment provider when the
// conversation reaches checkout. Amount is in minor currency units.

type PaymentInput struct {
	OrderID          string
	AmountMinorUnits int64
	Method           entities.PaymentMethod
	PayerEmail       string
	Description      string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// PIX charges come back with a copy-paste code, QR image URL and expiry;
// card checkouts come back with a redirect URL. Settlement is confirmed
// elsewhere (webhook/polling), never by this interface.

type IPaymentGateway interface {
	InitiatePayment(ctx context.Context, in PaymentInput) (entities.PaymentCharge, error)
}
