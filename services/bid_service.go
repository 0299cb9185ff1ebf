package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type PlaceBidRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// BidderInfo is the public slice of a user attached to bid listings. The
// phone number is only revealed to a bidder once their bid is accepted.
type BidderInfo struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
}

type MyBidView struct {
	models.Bid
	ProductTitle string      `json:"product_title,omitempty"`
	Seller       *BidderInfo `json:"seller,omitempty"`
}

type ProductBidView struct {
	models.Bid
	Bidder *BidderInfo `json:"bidder,omitempty"`
}

// BidService implements bid placement, acceptance and rejection. Placement
// and acceptance run inside one transaction with the product row locked, so
// two concurrent requests on the same product serialize on the row.
type BidService struct {
	db *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{db: db}
}

// minimumAcceptableBid is highest + min_increment, or the starting price when
// the product has no bids yet.
func minimumAcceptableBid(product *models.Product, highest *models.Bid) decimal.Decimal {
	if highest == nil {
		return product.StartingPrice
	}
	return highest.Amount.Add(product.MinIncrement)
}

// validatePlacement checks the auction state and the bidder against the
// product. It does not look at the amount.
func validatePlacement(product *models.Product, bidderID uuid.UUID, now time.Time) *ServiceError {
	if product.Status != models.ProductStatusActive || !product.AuctionEndAt.After(now) {
		return NewValidationError("Auction is not active")
	}
	if product.SellerID == bidderID {
		return NewForbiddenError("Cannot bid on your own product")
	}
	return nil
}

// PlaceBid validates the auction state and the minimum amount, marks the
// previous highest pending bid as outbid, and inserts the new pending bid.
func (s *BidService) PlaceBid(ctx context.Context, bidder *models.User, req *PlaceBidRequest) (*models.Bid, *ServiceError) {
	if !req.Amount.IsPositive() {
		return nil, NewValidationError("Bid amount must be positive")
	}

	var bid models.Bid
	var svcErr *ServiceError
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		products := repository.NewGormProductRepository(tx)
		bids := repository.NewGormBidRepository(tx)

		product, err := products.FindByIDForUpdate(ctx, req.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svcErr = NewNotFoundError("Product not found")
			return errRollback
		}
		if err != nil {
			return err
		}

		// Lazy expiry: an active auction past its end time flips to
		// expired on this write path. The flip must commit even though
		// the bid is refused.
		if product.Status == models.ProductStatusActive && !product.AuctionEndAt.After(time.Now().UTC()) {
			product.Status = models.ProductStatusExpired
			if err := products.Update(ctx, product); err != nil {
				return err
			}
			svcErr = NewValidationError("Auction is not active")
			return nil
		}
		if svcErr = validatePlacement(product, bidder.ID, time.Now().UTC()); svcErr != nil {
			return errRollback
		}

		highest, err := bids.FindHighestForProduct(ctx, product.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		minRequired := minimumAcceptableBid(product, highest)
		if req.Amount.LessThan(minRequired) {
			svcErr = NewValidationError(fmt.Sprintf("Bid must be at least %s", minRequired.StringFixed(2)))
			return errRollback
		}

		bid = models.Bid{
			ProductID: product.ID,
			BidderID:  bidder.ID,
			Amount:    req.Amount,
			Status:    models.BidStatusPending,
		}
		if err := bids.Create(ctx, &bid); err != nil {
			return err
		}

		if highest != nil && highest.Status == models.BidStatusPending {
			highest.Status = models.BidStatusOutbid
			if err := bids.Update(ctx, highest); err != nil {
				return err
			}
		}
		return nil
	})

	if svcErr != nil {
		return nil, svcErr
	}
	if txErr != nil {
		zap.L().Error("place bid failed", zap.Error(txErr))
		return nil, NewInternalError("Failed to place bid")
	}
	return &bid, nil
}

// AcceptBid settles the auction: the bid is accepted, every other pending bid
// is rejected, the product becomes sold and an awaiting-payment order is
// created. Re-accepting a bid that already has an order returns that order
// unchanged. All mutations commit or roll back together.
func (s *BidService) AcceptBid(ctx context.Context, seller *models.User, bidID uuid.UUID) (*models.Order, *ServiceError) {
	var order models.Order
	var svcErr *ServiceError
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		products := repository.NewGormProductRepository(tx)
		bids := repository.NewGormBidRepository(tx)
		orders := repository.NewGormOrderRepository(tx)

		bid, err := bids.FindByID(ctx, bidID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svcErr = NewNotFoundError("Bid not found")
			return errRollback
		}
		if err != nil {
			return err
		}

		product, err := products.FindByIDForUpdate(ctx, bid.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svcErr = NewNotFoundError("Product not found")
			return errRollback
		}
		if err != nil {
			return err
		}
		if product.SellerID != seller.ID {
			svcErr = NewForbiddenError("Not authorized to accept bids")
			return errRollback
		}

		existing, err := orders.FindByBidID(ctx, bid.ID)
		if err == nil {
			order = *existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if product.Status != models.ProductStatusActive {
			svcErr = NewValidationError("Product is not active")
			return errRollback
		}

		bid.Status = models.BidStatusAccepted
		if err := bids.Update(ctx, bid); err != nil {
			return err
		}
		if err := bids.RejectOtherPending(ctx, product.ID, bid.ID); err != nil {
			return err
		}

		product.Status = models.ProductStatusSold
		product.AcceptedBidID = &bid.ID
		if err := products.Update(ctx, product); err != nil {
			return err
		}

		order = models.Order{
			ProductID:   product.ID,
			BuyerID:     bid.BidderID,
			SellerID:    product.SellerID,
			BidID:       bid.ID,
			TotalAmount: bid.Amount,
			Status:      models.OrderStatusAwaitingPayment,
		}
		return orders.Create(ctx, &order)
	})

	if svcErr != nil {
		return nil, svcErr
	}
	if txErr != nil {
		zap.L().Error("accept bid failed", zap.Error(txErr))
		return nil, NewInternalError("Failed to accept bid")
	}
	return &order, nil
}

// RejectBid is a terminal seller decision on a single bid; no other rows are
// touched.
func (s *BidService) RejectBid(ctx context.Context, seller *models.User, bidID uuid.UUID) (*models.Bid, *ServiceError) {
	bids := repository.NewGormBidRepository(s.db)
	products := repository.NewGormProductRepository(s.db)

	bid, err := bids.FindByID(ctx, bidID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Bid not found")
	}
	if err != nil {
		return nil, NewInternalError("Failed to reject bid")
	}

	product, err := products.FindByID(ctx, bid.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Product not found")
	}
	if err != nil {
		return nil, NewInternalError("Failed to reject bid")
	}
	if product.SellerID != seller.ID {
		return nil, NewForbiddenError("Not authorized to reject bids")
	}

	bid.Status = models.BidStatusRejected
	if err := bids.Update(ctx, bid); err != nil {
		return nil, NewInternalError("Failed to reject bid")
	}
	return bid, nil
}

// ListMyBids returns the caller's bids with product and seller context.
func (s *BidService) ListMyBids(ctx context.Context, bidder *models.User) ([]MyBidView, *ServiceError) {
	bids := repository.NewGormBidRepository(s.db)
	products := repository.NewGormProductRepository(s.db)
	users := repository.NewGormUserRepository(s.db)

	list, err := bids.FindByBidder(ctx, bidder.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch bids")
	}

	views := make([]MyBidView, 0, len(list))
	for _, bid := range list {
		view := MyBidView{Bid: bid}
		if product, err := products.FindByID(ctx, bid.ProductID); err == nil {
			view.ProductTitle = product.Title
			if seller, err := users.FindByID(ctx, product.SellerID); err == nil {
				info := &BidderInfo{ID: seller.ID, FullName: seller.FullName}
				if bid.Status == models.BidStatusAccepted {
					info.PhoneNumber = seller.PhoneNumber
				}
				view.Seller = info
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ListProductBids returns all bids on a product, highest first. Seller only.
func (s *BidService) ListProductBids(ctx context.Context, caller *models.User, productID uuid.UUID) ([]ProductBidView, *ServiceError) {
	bids := repository.NewGormBidRepository(s.db)
	products := repository.NewGormProductRepository(s.db)
	users := repository.NewGormUserRepository(s.db)

	product, err := products.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Product not found")
	}
	if err != nil {
		return nil, NewInternalError("Failed to fetch bids")
	}
	if product.SellerID != caller.ID {
		return nil, NewForbiddenError("Not authorized to view bids")
	}

	list, err := bids.FindByProduct(ctx, productID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch bids")
	}

	views := make([]ProductBidView, 0, len(list))
	for _, bid := range list {
		view := ProductBidView{Bid: bid}
		if bidder, err := users.FindByID(ctx, bid.BidderID); err == nil {
			view.Bidder = &BidderInfo{
				ID:          bidder.ID,
				FullName:    bidder.FullName,
				PhoneNumber: bidder.PhoneNumber,
			}
		}
		views = append(views, view)
	}
	return views, nil
}
