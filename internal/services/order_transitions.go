package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/events"
	"github.com/aaravmahajanofficial/pod-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
)

// errInvalidTransition marks a change the state machine does not allow from the order's current status.
var errInvalidTransition = errors.New("invalid order status transition")

type transitioner struct {
	orders    repository.OrderRepository
	publisher events.Publisher
	now       func() time.Time
}

// apply persists a status change only while the order is still in change.From.
// The stored order is returned on success.
func (t *transitioner) apply(ctx context.Context, order *models.Order, change models.StatusChange) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.ID.String()))

	if !models.CanTransition(change.From, change.To) {
		logger.Warn("Rejected order status transition",
			slog.String("from", change.From.String()),
			slog.String("to", change.To.String()),
		)

		return nil, appErrors.InvalidTransitionError(change.From.String(), change.To.String()).WithError(errInvalidTransition)
	}

	updated, err := t.orders.ApplyStatusChange(ctx, order.ID, change)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusConflict):
			return nil, appErrors.ConflictError("Order status changed concurrently").WithError(err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		default:
			return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
		}
	}

	metrics.RecordOrderTransition(change.From.String(), change.To.String())
	logger.Info("Order status changed",
		slog.String("from", change.From.String()),
		slog.String("to", change.To.String()),
	)

	event := models.OrderStatusEvent{
		OrderID:         updated.ID,
		From:            change.From,
		To:              change.To,
		ProviderOrderID: updated.ProviderOrderID,
		OccurredAt:      t.now().UTC(),
	}

	if err := t.publisher.PublishOrderStatus(ctx, event); err != nil {
		logger.Warn("Order status event was not published", slog.String("error", err.Error()))
	}

	return updated, nil
}

func isInvalidTransition(err error) bool {
	return errors.Is(err, errInvalidTransition)
}

func isStatusConflict(err error) bool {
	return errors.Is(err, repository.ErrStatusConflict)
}
