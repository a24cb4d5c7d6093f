package exchangerates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrAllSourcesFailed = errors.New("all exchange rate sources failed")

// Client fetches a currency -> rate table with EUR as the base.
type Client interface {
	Fetch(ctx context.Context) (rates map[string]float64, source string, err error)
}

type httpClient struct {
	sources []string
	client  *http.Client
}

// NewClient tries sources in the given order and accepts the first usable answer.
func NewClient(sources []string, timeout time.Duration) Client {
	return NewClientWithHTTP(sources, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewClientWithHTTP(sources []string, client *http.Client) Client {
	cleaned := make([]string, 0, len(sources))
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	return &httpClient{sources: cleaned, client: client}
}

// covers both the frankfurter and open.er-api response shapes
type ratesPayload struct {
	Result string             `json:"result"`
	Base   string             `json:"base"`
	Code   string             `json:"base_code"`
	Rates  map[string]float64 `json:"rates"`
}

// Fetch implements Client.
func (c *httpClient) Fetch(ctx context.Context) (map[string]float64, string, error) {
	var errs []error

	for _, source := range c.sources {
		rates, err := c.fetchOne(ctx, source)
		if err != nil {
			slog.Warn("Exchange rate source failed",
				slog.String("source", source),
				slog.String("error", err.Error()),
			)

			errs = append(errs, err)

			if ctx.Err() != nil {
				break
			}

			continue
		}

		return rates, source, nil
	}

	return nil, "", errors.Join(append([]error{ErrAllSourcesFailed}, errs...)...)
}

func (c *httpClient) fetchOne(ctx context.Context, source string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("source %s returned status %d", source, resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	if payload.Result != "" && payload.Result != "success" {
		return nil, fmt.Errorf("source %s reported result %q", source, payload.Result)
	}

	base := payload.Base
	if base == "" {
		base = payload.Code
	}

	if base != "" && !strings.EqualFold(base, "EUR") {
		return nil, fmt.Errorf("source %s uses base %s, want EUR", source, base)
	}

	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("source %s returned no rates", source)
	}

	rates := make(map[string]float64, len(payload.Rates)+1)
	for code, rate := range payload.Rates {
		if rate > 0 {
			rates[strings.ToUpper(code)] = rate
		}
	}

	rates["EUR"] = 1.0

	return rates, nil
}
