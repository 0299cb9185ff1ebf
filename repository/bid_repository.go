package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
)

// BidRepository defines the interface for bid data access
type BidRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	FindByBidder(ctx context.Context, bidderID uuid.UUID) ([]models.Bid, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.Bid, error)
	// FindHighestForProduct returns the bid with the maximum amount, or
	// gorm.ErrRecordNotFound when the product has no bids.
	FindHighestForProduct(ctx context.Context, productID uuid.UUID) (*models.Bid, error)
	CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	Create(ctx context.Context, bid *models.Bid) error
	Update(ctx context.Context, bid *models.Bid) error
	// RejectOtherPending moves every pending bid on the product except the
	// accepted one to rejected.
	RejectOtherPending(ctx context.Context, productID, acceptedBidID uuid.UUID) error
}

type GormBidRepository struct {
	db *gorm.DB
}

func NewGormBidRepository(db *gorm.DB) BidRepository {
	return &GormBidRepository{db: db}
}

func (r *GormBidRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *GormBidRepository) FindByBidder(ctx context.Context, bidderID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.WithContext(ctx).
		Where("bidder_id = ?", bidderID).
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *GormBidRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("amount DESC").
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *GormBidRepository) FindHighestForProduct(ctx context.Context, productID uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("amount DESC").
		First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *GormBidRepository) CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBidRepository) Create(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

func (r *GormBidRepository) Update(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Save(bid).Error
}

func (r *GormBidRepository) RejectOtherPending(ctx context.Context, productID, acceptedBidID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("product_id = ? AND id <> ? AND status = ?", productID, acceptedBidID, models.BidStatusPending).
		Update("status", models.BidStatusRejected).Error
}
