package entities

// PaymentMethod is the checkout option chosen in the conversation.

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "instant"
)

// PaymentCharge is the result of initiating a payment with the provider.
// Card checkouts carry a redirect URL; PIX charges carry a copy-paste code,
// a QR image URL and the provider-enforced expiry. Settlement confirmation
// arrives later through the payment-confirm hook, not here.

type PaymentCharge struct {
	OrderID           string        `json:"order_id"`
	Method            PaymentMethod `json:"method"`
	AmountMinorUnits  int64         `json:"amount"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`

	RedirectURL string `json:"redirect_url,omitempty"`

	PixCode          string `json:"pix_code,omitempty"`
	QRCodeURL        string `json:"qr_code_url,omitempty"`
	ExpiresInSeconds int64  `json:"expires_in,omitempty"`
}
