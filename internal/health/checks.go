package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	stripeClient "github.com/aaravmahajanofficial/pod-storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

type Endpoints struct {
	StripeClient stripeClient.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "pod-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:    "stripe",
				Timeout: 5 * time.Second,
				// Payments degrade checkout only; the catalog keeps serving.
				SkipOnErr: true,
				Check:     StripeCheck(endpoints.StripeClient),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func StripeCheck(client stripeClient.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.New("stripe client is not initialized")
		}

		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to stripe: %w", err)
		}

		return nil
	}
}
