package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type AddFavoriteRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

func (s *FavoriteService) List(ctx context.Context, user *models.User) ([]models.Favorite, *ServiceError) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch favorites")
	}
	return favorites, nil
}

// Add is idempotent: favoriting the same product twice returns the existing
// row without inserting a duplicate.
func (s *FavoriteService) Add(ctx context.Context, user *models.User, req *AddFavoriteRequest) (*models.Favorite, *ServiceError) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Product not found")
		}
		return nil, NewInternalError("Failed to add favorite")
	}

	existing, err := s.favoriteRepo.Find(ctx, user.ID, req.ProductID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewInternalError("Failed to add favorite")
	}

	favorite := &models.Favorite{UserID: user.ID, ProductID: req.ProductID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, NewInternalError("Failed to add favorite")
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, user *models.User, productID uuid.UUID) *ServiceError {
	favorite, err := s.favoriteRepo.Find(ctx, user.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Favorite not found")
		}
		return NewInternalError("Failed to remove favorite")
	}
	if err := s.favoriteRepo.Delete(ctx, favorite); err != nil {
		return NewInternalError("Failed to remove favorite")
	}
	return nil
}
