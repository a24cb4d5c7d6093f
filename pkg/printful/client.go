package printful

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Item references a provider variant either by numeric id or by our external variant id.
type Item struct {
	VariantID         int64  `json:"variant_id,omitempty"`
	ExternalVariantID string `json:"external_variant_id,omitempty"`
	Quantity          int    `json:"quantity"`
	RetailPrice       string `json:"retail_price,omitempty"`
	Name              string `json:"name,omitempty"`
}

type OrderRequest struct {
	ExternalID string    `json:"external_id"`
	Recipient  Recipient `json:"recipient"`
	Items      []Item    `json:"items"`
	Currency   string    `json:"currency,omitempty"`
	Confirm    bool      `json:"-"`
}

type OrderResult struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

// ProviderOrderID is the provider's id as stored on our order.
func (r *OrderResult) ProviderOrderID() string {
	return strconv.FormatInt(r.ID, 10)
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fulfillment provider returned %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}

	return fmt.Sprintf("fulfillment provider returned %d: %s", e.StatusCode, e.Message)
}

type Client interface {
	CreateOrder(ctx context.Context, order *OrderRequest) (*OrderResult, error)
}

type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RequestsPerSec float64
	Burst          int
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

func NewClient(cfg Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewClientWithHTTP(cfg Config, client *http.Client) Client {
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateOrder implements Client.
func (c *httpClient) CreateOrder(ctx context.Context, order *OrderRequest) (*OrderResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fulfillment provider rate limit: %w", err)
	}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	endpoint := c.baseURL + "/orders"
	if order.Confirm {
		endpoint += "?confirm=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fulfillment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}

		if decodeErr == nil {
			switch {
			case env.Error != nil:
				apiErr.Reason = env.Error.Reason
				apiErr.Message = env.Error.Message
			case len(env.Result) > 0:
				var msg string
				if json.Unmarshal(env.Result, &msg) == nil {
					apiErr.Message = msg
				}
			}
		}

		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode provider response: %w", decodeErr)
	}

	var result OrderResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, fmt.Errorf("decode provider order: %w", err)
	}

	if result.ID == 0 {
		return nil, errors.New("provider response carries no order id")
	}

	return &result, nil
}
