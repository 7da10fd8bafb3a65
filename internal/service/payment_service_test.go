package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrapy-be/internal/entity"
)

func TestGetPaymentHistoryScopedToCaller(t *testing.T) {
	paymentRepo := &fakePaymentRepo{payments: []*entity.PaymentRecord{
		{Id: "p-1", UserId: "user-1", SessionId: "s-1", Amount: 2.5},
		{Id: "p-2", UserId: "someone-else", SessionId: "s-2", Amount: 120},
		{Id: "p-3", UserId: "user-1", SessionId: "s-3", Amount: 10},
	}}
	svc := NewPaymentService(paymentRepo)

	payments, err := svc.GetPaymentHistory(context.Background(), clientUser())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, "user-1", p.UserId)
	}
}
