package models_test

import (
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		allowed  bool
	}{
		{models.OrderStatusPending, models.OrderStatusPaid, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusProcessing, false},
		{models.OrderStatusPaid, models.OrderStatusProcessing, true},
		{models.OrderStatusPaid, models.OrderStatusError, true},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusProcessing, models.OrderStatusDelivered, true},
		{models.OrderStatusProcessing, models.OrderStatusError, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusError, models.OrderStatusProcessing, true},
		{models.OrderStatusDelivered, models.OrderStatusError, false},
		{models.OrderStatusCancelled, models.OrderStatusPaid, false},
		{models.OrderStatusPaid, models.OrderStatusPending, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, models.CanTransition(tc.from, tc.to))
		})
	}
}

func TestOrderStatusHelpers(t *testing.T) {
	assert.True(t, models.OrderStatusDelivered.IsTerminal())
	assert.True(t, models.OrderStatusCancelled.IsTerminal())
	assert.False(t, models.OrderStatusError.IsTerminal())

	assert.True(t, models.OrderStatusShipped.Valid())
	assert.False(t, models.OrderStatus("refunded").Valid())
}

func TestNormalizePage(t *testing.T) {
	page, size := models.NormalizePage(0, 500, 20, 50)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = models.NormalizePage(3, 50, 20, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)
}
