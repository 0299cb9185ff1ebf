package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type CreatePaymentRequest struct {
	OrderID  uuid.UUID `json:"order_id" binding:"required"`
	Provider string    `json:"provider" binding:"required,max=50"`
}

// PaymentService settles orders through a synchronous mock provider. The
// mock cannot fail: a payment is recorded as successful immediately, the
// order becomes paid and the product sold, all in one transaction.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) Create(ctx context.Context, buyer *models.User, req *CreatePaymentRequest) (*models.Payment, *ServiceError) {
	var payment models.Payment
	var svcErr *ServiceError
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewGormOrderRepository(tx)
		products := repository.NewGormProductRepository(tx)
		payments := repository.NewGormPaymentRepository(tx)

		order, err := orders.FindByID(ctx, req.OrderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svcErr = NewNotFoundError("Order not found")
			return errRollback
		}
		if err != nil {
			return err
		}
		if order.BuyerID != buyer.ID {
			svcErr = NewForbiddenError("Not authorized to pay for this order")
			return errRollback
		}
		if order.Status != models.OrderStatusAwaitingPayment {
			svcErr = NewValidationError("Order is not awaiting payment")
			return errRollback
		}

		now := time.Now().UTC()
		payment = models.Payment{
			OrderID:    order.ID,
			Provider:   req.Provider,
			PaymentRef: fmt.Sprintf("MOCK-%s-%d", order.ID, now.Unix()),
			Status:     models.PaymentStatusSuccess,
			PaidAt:     &now,
		}
		if err := payments.Create(ctx, &payment); err != nil {
			return err
		}

		order.Status = models.OrderStatusPaid
		if err := orders.Update(ctx, order); err != nil {
			return err
		}

		product, err := products.FindByID(ctx, order.ProductID)
		if err == nil {
			product.Status = models.ProductStatusSold
			if err := products.Update(ctx, product); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})

	if svcErr != nil {
		return nil, svcErr
	}
	if txErr != nil {
		zap.L().Error("create payment failed", zap.Error(txErr))
		return nil, NewInternalError("Failed to create payment")
	}
	return &payment, nil
}
