package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	number := NewOrderNumber(at)

	assert.Equal(t, fmt.Sprintf("PED-%d", at.UnixMilli()), number)
	assert.Regexp(t, `^PED-\d+$`, number)
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusConfirmed.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("enviado").IsValid())
}
