package services

import (
	"context"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type OrderView struct {
	models.Order
	ProductTitle string      `json:"product_title,omitempty"`
	Seller       *BidderInfo `json:"seller,omitempty"`
}

type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo, userRepo: userRepo}
}

// ListMine returns the caller's purchases with product and seller context.
func (s *OrderService) ListMine(ctx context.Context, buyer *models.User) ([]OrderView, *ServiceError) {
	orders, err := s.orderRepo.FindByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch orders")
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{Order: order}
		if product, err := s.productRepo.FindByID(ctx, order.ProductID); err == nil {
			view.ProductTitle = product.Title
		}
		if seller, err := s.userRepo.FindByID(ctx, order.SellerID); err == nil {
			view.Seller = &BidderInfo{
				ID:          seller.ID,
				FullName:    seller.FullName,
				PhoneNumber: seller.PhoneNumber,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ListSales returns orders where the caller is the seller.
func (s *OrderService) ListSales(ctx context.Context, seller *models.User) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.FindBySeller(ctx, seller.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch sales")
	}
	return orders, nil
}
