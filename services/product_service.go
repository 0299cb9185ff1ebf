package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type CreateProductRequest struct {
	CategoryID    uuid.UUID       `json:"category_id" binding:"required"`
	Title         string          `json:"title" binding:"required,min=1,max=255"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
	MinIncrement  decimal.Decimal `json:"min_increment" binding:"required"`
	AuctionEndAt  time.Time       `json:"auction_end_at" binding:"required"`
}

type UpdateProductRequest struct {
	CategoryID    *uuid.UUID            `json:"category_id"`
	Title         *string               `json:"title" binding:"omitempty,min=1,max=255"`
	Description   *string               `json:"description"`
	StartingPrice *decimal.Decimal      `json:"starting_price"`
	MinIncrement  *decimal.Decimal      `json:"min_increment"`
	AuctionEndAt  *time.Time            `json:"auction_end_at"`
	Status        *models.ProductStatus `json:"status" binding:"omitempty,oneof=active sold expired closed"`
}

type AddImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Position int    `json:"position" binding:"omitempty,min=0"`
}

// ProductDetails is the read-model for feed and detail views: the listing
// plus seller contact, current highest bid, bid count and the caller's
// favorite flag. Assembled at read time, never persisted.
type ProductDetails struct {
	models.Product
	Seller      *BidderInfo      `json:"seller,omitempty"`
	HighestBid  *decimal.Decimal `json:"highest_bid,omitempty"`
	BidCount    int64            `json:"bid_count"`
	IsFavorited bool             `json:"is_favorited"`
}

type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	bidRepo      repository.BidRepository
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	bidRepo repository.BidRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		bidRepo:      bidRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, *ServiceError) {
	products, err := s.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, NewInternalError("Failed to fetch products")
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Product not found")
	}
	if err != nil {
		return nil, NewInternalError("Failed to fetch product")
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, seller *models.User, req *CreateProductRequest) (*models.Product, *ServiceError) {
	if !req.StartingPrice.IsPositive() {
		return nil, NewValidationError("Starting price must be positive")
	}
	if !req.MinIncrement.IsPositive() {
		return nil, NewValidationError("Minimum increment must be positive")
	}
	if !req.AuctionEndAt.After(time.Now().UTC()) {
		return nil, NewValidationError("Auction end must be in the future")
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, NewNotFoundError("Category not found")
	}

	product := &models.Product{
		SellerID:      seller.ID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		MinIncrement:  req.MinIncrement,
		AuctionEndAt:  req.AuctionEndAt,
		Status:        models.ProductStatusActive,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, NewInternalError("Failed to create product")
	}
	return product, nil
}

// Update applies a partial edit. The seller owns the listing; admins may edit
// any listing.
func (s *ProductService) Update(ctx context.Context, caller *models.User, id uuid.UUID, req *UpdateProductRequest) (*models.Product, *ServiceError) {
	product, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if caller.Role != models.RoleAdmin && product.SellerID != caller.ID {
		return nil, NewForbiddenError("Not authorized to update this product")
	}
	if req.AuctionEndAt != nil && !req.AuctionEndAt.After(time.Now().UTC()) {
		return nil, NewValidationError("Auction end must be in the future")
	}
	if req.StartingPrice != nil && !req.StartingPrice.IsPositive() {
		return nil, NewValidationError("Starting price must be positive")
	}
	if req.MinIncrement != nil && !req.MinIncrement.IsPositive() {
		return nil, NewValidationError("Minimum increment must be positive")
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, NewNotFoundError("Category not found")
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.StartingPrice != nil {
		product.StartingPrice = *req.StartingPrice
	}
	if req.MinIncrement != nil {
		product.MinIncrement = *req.MinIncrement
	}
	if req.AuctionEndAt != nil {
		product.AuctionEndAt = *req.AuctionEndAt
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, NewInternalError("Failed to update product")
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, caller *models.User, id uuid.UUID) *ServiceError {
	product, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return svcErr
	}
	if caller.Role != models.RoleAdmin && product.SellerID != caller.ID {
		return NewForbiddenError("Not authorized to delete this product")
	}
	if err := s.productRepo.Delete(ctx, product); err != nil {
		return NewInternalError("Failed to delete product")
	}
	return nil
}

// Close is the explicit active → closed transition, distinct from lazy
// expiry.
func (s *ProductService) Close(ctx context.Context, caller *models.User, id uuid.UUID) (*models.Product, *ServiceError) {
	product, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if caller.Role != models.RoleAdmin && product.SellerID != caller.ID {
		return nil, NewForbiddenError("Not authorized to close this product")
	}
	if product.Status != models.ProductStatusActive {
		return nil, NewValidationError("Product is not active")
	}
	product.Status = models.ProductStatusClosed
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, NewInternalError("Failed to close product")
	}
	return product, nil
}

func (s *ProductService) AddImage(ctx context.Context, caller *models.User, productID uuid.UUID, req *AddImageRequest) (*models.ProductImage, *ServiceError) {
	product, svcErr := s.Get(ctx, productID)
	if svcErr != nil {
		return nil, svcErr
	}
	if product.SellerID != caller.ID {
		return nil, NewForbiddenError("Not authorized to add images")
	}
	if req.Position < 0 {
		return nil, NewValidationError("Position must not be negative")
	}

	image := &models.ProductImage{
		ProductID: productID,
		ImageURL:  req.ImageURL,
		Position:  req.Position,
	}
	if err := s.productRepo.AddImage(ctx, image); err != nil {
		return nil, NewInternalError("Failed to add image")
	}
	return image, nil
}

// GetDetails assembles the read-model for a single product.
func (s *ProductService) GetDetails(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (*ProductDetails, *ServiceError) {
	product, svcErr := s.Get(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	details, err := s.buildDetails(ctx, product, callerID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch product details")
	}
	return details, nil
}

// Feed lists active listings from other sellers, enriched with details.
func (s *ProductService) Feed(ctx context.Context, caller *models.User) ([]ProductDetails, *ServiceError) {
	products, err := s.productRepo.FindActiveExcludingSeller(ctx, caller.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch feed")
	}
	return s.buildDetailsList(ctx, products, caller.ID)
}

func (s *ProductService) MyProducts(ctx context.Context, caller *models.User) ([]ProductDetails, *ServiceError) {
	products, err := s.productRepo.FindBySeller(ctx, caller.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch products")
	}
	return s.buildDetailsList(ctx, products, caller.ID)
}

func (s *ProductService) FavoriteProducts(ctx context.Context, caller *models.User) ([]ProductDetails, *ServiceError) {
	products, err := s.productRepo.FindFavoritedBy(ctx, caller.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch favorites")
	}
	return s.buildDetailsList(ctx, products, caller.ID)
}

func (s *ProductService) buildDetailsList(ctx context.Context, products []models.Product, callerID uuid.UUID) ([]ProductDetails, *ServiceError) {
	views := make([]ProductDetails, 0, len(products))
	for i := range products {
		details, err := s.buildDetails(ctx, &products[i], callerID)
		if err != nil {
			return nil, NewInternalError("Failed to fetch product details")
		}
		views = append(views, *details)
	}
	return views, nil
}

// buildDetails composes the three independent lookups; the write-side entity
// stays untouched.
func (s *ProductService) buildDetails(ctx context.Context, product *models.Product, callerID uuid.UUID) (*ProductDetails, error) {
	details := &ProductDetails{Product: *product}

	if seller, err := s.userRepo.FindByID(ctx, product.SellerID); err == nil {
		details.Seller = &BidderInfo{
			ID:          seller.ID,
			FullName:    seller.FullName,
			PhoneNumber: seller.PhoneNumber,
		}
	}

	highest, err := s.bidRepo.FindHighestForProduct(ctx, product.ID)
	if err == nil {
		details.HighestBid = &highest.Amount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.bidRepo.CountForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	details.BidCount = count

	if callerID != uuid.Nil {
		favorited, err := s.favoriteRepo.Exists(ctx, callerID, product.ID)
		if err != nil {
			return nil, err
		}
		details.IsFavorited = favorited
	}
	return details, nil
}
