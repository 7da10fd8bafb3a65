package service

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

const paymentListLimit = 100

type IPaymentService interface {
	GetPaymentHistory(ctx context.Context, caller *entity.User) ([]*entity.PaymentRecord, error)
}

type paymentService struct {
	paymentRepo contract.PaymentRepository
}

func NewPaymentService(paymentRepo contract.PaymentRepository) IPaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, caller *entity.User) ([]*entity.PaymentRecord, error) {
	return s.paymentRepo.FindAll(ctx, paymentListLimit, specification.ByUserId{UserId: caller.Id})
}
