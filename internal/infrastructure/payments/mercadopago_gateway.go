package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

const (
	pixExpirySeconds = 1800
	qrImageEndpoint  = "https://api.qrserver.com/v1/create-qr-code/"
)

// MercadoPagoGateway initiates charges with Mercado Pago. PIX goes through
// the payments API (copy-paste code plus QR), card through a checkout
// preference (redirect URL). Mock mode returns deterministic charges so the
// whole flow runs without provider credentials.

type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) InitiatePayment(ctx context.Context, in interfaces.PaymentInput) (entities.PaymentCharge, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(in), nil
	}
	if g == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentCharge{}, ErrMercadoPagoGatewayNotConfigured
	}

	switch in.Method {
	case entities.PaymentMethodPix:
		return g.createPixCharge(ctx, in)
	case entities.PaymentMethodCard:
		return g.createCardCheckout(ctx, in)
	default:
		return entities.PaymentCharge{}, ErrUnsupportedPaymentMethod
	}
}

func (g *MercadoPagoGateway) createPixCharge(ctx context.Context, in interfaces.PaymentInput) (entities.PaymentCharge, error) {
	log.Printf("[payment][gateway] pix create start order_id=%s amount=%d", in.OrderID, in.AmountMinorUnits)

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: minorUnitsToAmount(in.AmountMinorUnits),
		PaymentMethodID:   "pix",
		Description:       in.Description,
		ExternalReference: in.OrderID,
		Payer: &payment.PayerRequest{
			Email: in.PayerEmail,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] pix create failed order_id=%s err=%v", in.OrderID, err)
		return entities.PaymentCharge{}, err
	}

	code := resp.PointOfInteraction.TransactionData.QRCode
	log.Printf("[payment][gateway] pix create success order_id=%s provider_payment_id=%d", in.OrderID, resp.ID)

	return entities.PaymentCharge{
		OrderID:           in.OrderID,
		Method:            entities.PaymentMethodPix,
		AmountMinorUnits:  in.AmountMinorUnits,
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		PixCode:           code,
		QRCodeURL:         qrImageURL(code),
		ExpiresInSeconds:  pixExpirySeconds,
	}, nil
}

func (g *MercadoPagoGateway) createCardCheckout(ctx context.Context, in interfaces.PaymentInput) (entities.PaymentCharge, error) {
	log.Printf("[payment][gateway] card checkout start order_id=%s amount=%d", in.OrderID, in.AmountMinorUnits)

	resp, err := g.preferences.Create(ctx, preference.Request{
		ExternalReference: in.OrderID,
		Items: []preference.ItemRequest{
			{
				ID:         in.OrderID,
				Title:      in.Description,
				Quantity:   1,
				UnitPrice:  minorUnitsToAmount(in.AmountMinorUnits),
				CurrencyID: "BRL",
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] card checkout failed order_id=%s err=%v", in.OrderID, err)
		return entities.PaymentCharge{}, err
	}

	log.Printf("[payment][gateway] card checkout success order_id=%s preference_id=%s", in.OrderID, resp.ID)

	return entities.PaymentCharge{
		OrderID:           in.OrderID,
		Method:            entities.PaymentMethodCard,
		AmountMinorUnits:  in.AmountMinorUnits,
		ProviderPaymentID: resp.ID,
		RedirectURL:       resp.InitPoint,
	}, nil
}

func (g *MercadoPagoGateway) mockCharge(in interfaces.PaymentInput) entities.PaymentCharge {
	charge := entities.PaymentCharge{
		OrderID:           in.OrderID,
		Method:            in.Method,
		AmountMinorUnits:  in.AmountMinorUnits,
		ProviderPaymentID: fmt.Sprintf("mock_%s", in.OrderID),
	}
	if in.Method == entities.PaymentMethodCard {
		charge.RedirectURL = fmt.Sprintf("https://checkout.example.com/pay/%s", in.OrderID)
		log.Printf("[payment][gateway] mock card checkout order_id=%s", in.OrderID)
		return charge
	}

	charge.PixCode = fmt.Sprintf("00020126MOCKPIX%s5204000053039865802BR", in.OrderID)
	charge.QRCodeURL = qrImageURL(charge.PixCode)
	charge.ExpiresInSeconds = pixExpirySeconds
	log.Printf("[payment][gateway] mock pix charge order_id=%s", in.OrderID)
	return charge
}

func minorUnitsToAmount(v int64) float64 {
	return float64(v) / 100
}

func qrImageURL(code string) string {
	q := url.Values{}
	q.Set("size", "250x250")
	q.Set("data", code)
	return qrImageEndpoint + "?" + q.Encode()
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
