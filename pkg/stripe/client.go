package stripe

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

type CheckoutSession = stripe.CheckoutSession

var ErrWebhookSecretMissing = errors.New("webhook secret not configured")

type LineItem struct {
	Name      string
	ImageURL  string
	UnitPrice float64
	Quantity  int64
}

// CheckoutParams describes one hosted checkout for a single order.
type CheckoutParams struct {
	OrderID       string
	CustomerEmail string
	Currency      string
	Items         []LineItem
	ShippingFee   float64
	SuccessURL    string
	CancelURL     string
}

// defines the methods that any of payment client must implement.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping(ctx context.Context) error
}

// stripeClient is the implementation of the Client interface.
type stripeClient struct {
	sessions      session.Client
	balances      balance.Client
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	backend := stripe.GetBackend(stripe.APIBackend)

	return newClient(apiKey, webhookSecret, backend)
}

// NewStripeClientWithBackend points the client at another API base URL, used against local stubs.
func NewStripeClientWithBackend(apiKey, webhookSecret, baseURL string, httpClient *http.Client) Client {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	return newClient(apiKey, webhookSecret, backend)
}

func newClient(apiKey, webhookSecret string, backend stripe.Backend) *stripeClient {
	return &stripeClient{
		sessions:      session.Client{B: backend, Key: apiKey},
		balances:      balance.Client{B: backend, Key: apiKey},
		webhookSecret: webhookSecret,
	}
}

// MinorUnits converts a decimal amount into the integer amount Stripe expects.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateCheckoutSession implements Client.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (*CheckoutSession, error) {
	currency := strings.ToLower(p.Currency)

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items)+1)
	for _, item := range p.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{item.ImageURL})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(MinorUnits(item.UnitPrice)),
				ProductData: product,
			},
		})
	}

	if p.ShippingFee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(MinorUnits(p.ShippingFee)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Shipping"),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         lineItems,
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.OrderID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"order_id": p.OrderID},
		},
	}
	params.AddMetadata("order_id", p.OrderID)

	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	sess, err := s.sessions.New(params)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// VerifyWebhookSignature implements Client.
func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, ErrWebhookSecretMissing
	}

	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// Ping implements Client.
func (s *stripeClient) Ping(ctx context.Context) error {
	_, err := s.balances.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})

	return err
}
