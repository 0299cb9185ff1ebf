package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
)

type FavoriteRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	Find(ctx context.Context, userID, productID uuid.UUID) (*models.Favorite, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, favorite *models.Favorite) error
}

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// FindByUser lists the user's favorites, skipping expired listings.
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = favorites.product_id").
		Where("favorites.user_id = ? AND products.status <> ?", userID, models.ProductStatusExpired).
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *GormFavoriteRepository) Find(ctx context.Context, userID, productID uuid.UUID) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *GormFavoriteRepository) Delete(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", favorite.UserID, favorite.ProductID).
		Delete(&models.Favorite{}).Error
}
