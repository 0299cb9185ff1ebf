package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
)

// Aggregate row shapes returned by the analytics queries.

type TrendingProductRow struct {
	ProductID     uuid.UUID `json:"product_id"`
	Title         string    `json:"title"`
	FavoriteCount int64     `json:"favorite_count"`
}

type SellerBidStatsRow struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	BidCount  int64           `json:"bid_count"`
	MaxBid    decimal.Decimal `json:"max_bid"`
	AvgBid    decimal.Decimal `json:"avg_bid"`
}

type OutbidBidRow struct {
	BidID     uuid.UUID       `json:"bid_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Amount    decimal.Decimal `json:"amount"`
	MaxAmount decimal.Decimal `json:"max_amount"`
}

type ActiveWithoutBidsRow struct {
	ProductID    uuid.UUID `json:"product_id"`
	Title        string    `json:"title"`
	AuctionEndAt time.Time `json:"auction_end_at"`
}

type TopBidderRow struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	BidCount int64     `json:"bid_count"`
}

// AnalyticsRepository runs the read-only aggregate queries. No mutations.
type AnalyticsRepository interface {
	TrendingProducts(ctx context.Context, minFavorites int) ([]TrendingProductRow, error)
	SellerBidStats(ctx context.Context, sellerID uuid.UUID) ([]SellerBidStatsRow, error)
	OutbidBids(ctx context.Context, bidderID uuid.UUID) ([]OutbidBidRow, error)
	ActiveWithoutBids(ctx context.Context) ([]ActiveWithoutBidsRow, error)
	TopBidders(ctx context.Context, minBids int) ([]TopBidderRow, error)
}

type GormAnalyticsRepository struct {
	db *gorm.DB
}

func NewGormAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

func (r *GormAnalyticsRepository) TrendingProducts(ctx context.Context, minFavorites int) ([]TrendingProductRow, error) {
	var rows []TrendingProductRow
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.id AS product_id, products.title, COUNT(favorites.product_id) AS favorite_count").
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Group("products.id, products.title").
		Having("COUNT(favorites.product_id) >= ?", minFavorites).
		Order("favorite_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepository) SellerBidStats(ctx context.Context, sellerID uuid.UUID) ([]SellerBidStatsRow, error) {
	var rows []SellerBidStatsRow
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.id AS product_id, products.title, COUNT(bids.id) AS bid_count, MAX(bids.amount) AS max_bid, AVG(bids.amount) AS avg_bid").
		Joins("JOIN bids ON bids.product_id = products.id").
		Where("products.seller_id = ?", sellerID).
		Group("products.id, products.title").
		Having("COUNT(bids.id) >= ?", 1).
		Order("bid_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepository) OutbidBids(ctx context.Context, bidderID uuid.UUID) ([]OutbidBidRow, error) {
	maxBids := r.db.
		Model(&models.Bid{}).
		Select("product_id, MAX(amount) AS max_amount").
		Group("product_id")

	var rows []OutbidBidRow
	err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Select("bids.id AS bid_id, bids.product_id, bids.amount, max_bids.max_amount").
		Joins("JOIN (?) AS max_bids ON bids.product_id = max_bids.product_id", maxBids).
		Where("bids.bidder_id = ? AND bids.amount < max_bids.max_amount", bidderID).
		Order("max_bids.max_amount DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepository) ActiveWithoutBids(ctx context.Context) ([]ActiveWithoutBidsRow, error) {
	var rows []ActiveWithoutBidsRow
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.id AS product_id, products.title, products.auction_end_at").
		Where("products.status = ?", models.ProductStatusActive).
		Where("NOT EXISTS (SELECT 1 FROM bids WHERE bids.product_id = products.id)").
		Order("products.auction_end_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepository) TopBidders(ctx context.Context, minBids int) ([]TopBidderRow, error) {
	var rows []TopBidderRow
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id AS user_id, users.email, COUNT(bids.id) AS bid_count").
		Joins("JOIN bids ON bids.bidder_id = users.id").
		Group("users.id, users.email").
		Having("COUNT(bids.id) >= ?", minBids).
		Order("bid_count DESC").
		Scan(&rows).Error
	return rows, err
}
