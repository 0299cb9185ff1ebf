package services

import (
	"context"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

// AnalyticsService exposes the read-only aggregate queries. Thresholds below
// one are clamped to the defaults.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) TrendingProducts(ctx context.Context, minFavorites int) ([]repository.TrendingProductRow, *ServiceError) {
	if minFavorites < 1 {
		minFavorites = 2
	}
	rows, err := s.analyticsRepo.TrendingProducts(ctx, minFavorites)
	if err != nil {
		return nil, NewInternalError("Failed to fetch trending products")
	}
	return rows, nil
}

func (s *AnalyticsService) SellerBidStats(ctx context.Context, seller *models.User) ([]repository.SellerBidStatsRow, *ServiceError) {
	rows, err := s.analyticsRepo.SellerBidStats(ctx, seller.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch bid stats")
	}
	return rows, nil
}

func (s *AnalyticsService) OutbidBids(ctx context.Context, bidder *models.User) ([]repository.OutbidBidRow, *ServiceError) {
	rows, err := s.analyticsRepo.OutbidBids(ctx, bidder.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch outbid bids")
	}
	return rows, nil
}

func (s *AnalyticsService) ActiveWithoutBids(ctx context.Context) ([]repository.ActiveWithoutBidsRow, *ServiceError) {
	rows, err := s.analyticsRepo.ActiveWithoutBids(ctx)
	if err != nil {
		return nil, NewInternalError("Failed to fetch products")
	}
	return rows, nil
}

func (s *AnalyticsService) TopBidders(ctx context.Context, minBids int) ([]repository.TopBidderRow, *ServiceError) {
	if minBids < 1 {
		minBids = 2
	}
	rows, err := s.analyticsRepo.TopBidders(ctx, minBids)
	if err != nil {
		return nil, NewInternalError("Failed to fetch top bidders")
	}
	return rows, nil
}
