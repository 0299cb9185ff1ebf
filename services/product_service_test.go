package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
)

func newProductService() (*ProductService, *MockProductRepository, *MockCategoryRepository, *MockBidRepository, *MockFavoriteRepository, *MockUserRepository) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	bids := new(MockBidRepository)
	favorites := new(MockFavoriteRepository)
	users := new(MockUserRepository)
	service := NewProductService(products, categories, bids, favorites, users)
	return service, products, categories, bids, favorites, users
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	seller := &models.User{ID: uuid.New(), Role: models.RoleSeller}
	categoryID := uuid.New()

	validReq := func() *CreateProductRequest {
		return &CreateProductRequest{
			CategoryID:    categoryID,
			Title:         "Vintage Camera",
			StartingPrice: decimal.RequireFromString("100.00"),
			MinIncrement:  decimal.RequireFromString("10.00"),
			AuctionEndAt:  time.Now().UTC().Add(48 * time.Hour),
		}
	}

	t.Run("Success Starts Active", func(t *testing.T) {
		service, products, categories, _, _, _ := newProductService()
		categories.On("FindByID", ctx, categoryID).Return(&models.Category{ID: categoryID}, nil).Once()
		products.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, svcErr := service.Create(ctx, seller, validReq())

		assert.Nil(t, svcErr)
		assert.Equal(t, models.ProductStatusActive, product.Status)
		assert.Equal(t, seller.ID, product.SellerID)
		products.AssertExpectations(t)
	})

	t.Run("Non Positive Starting Price", func(t *testing.T) {
		service, _, _, _, _, _ := newProductService()
		req := validReq()
		req.StartingPrice = decimal.Zero

		product, svcErr := service.Create(ctx, seller, req)

		assert.Nil(t, product)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Past End Time", func(t *testing.T) {
		service, _, _, _, _, _ := newProductService()
		req := validReq()
		req.AuctionEndAt = time.Now().UTC().Add(-time.Minute)

		product, svcErr := service.Create(ctx, seller, req)

		assert.Nil(t, product)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		service, _, categories, _, _, _ := newProductService()
		categories.On("FindByID", ctx, categoryID).Return(nil, gorm.ErrRecordNotFound).Once()

		product, svcErr := service.Create(ctx, seller, validReq())

		assert.Nil(t, product)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: uuid.New(), Role: models.RoleSeller}
	productID := uuid.New()

	ownedProduct := func() *models.Product {
		return &models.Product{
			ID:       productID,
			SellerID: owner.ID,
			Title:    "Old Title",
			Status:   models.ProductStatusActive,
		}
	}

	t.Run("Owner Edits Title", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).Return(ownedProduct(), nil).Once()
		products.On("Update", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		newTitle := "New Title"
		product, svcErr := service.Update(ctx, owner, productID, &UpdateProductRequest{Title: &newTitle})

		assert.Nil(t, svcErr)
		assert.Equal(t, "New Title", product.Title)
		products.AssertExpectations(t)
	})

	t.Run("Foreign Seller Forbidden", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).Return(ownedProduct(), nil).Once()

		stranger := &models.User{ID: uuid.New(), Role: models.RoleSeller}
		newTitle := "Hijacked"
		product, svcErr := service.Update(ctx, stranger, productID, &UpdateProductRequest{Title: &newTitle})

		assert.Nil(t, product)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})

	t.Run("Admin Bypasses Ownership", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).Return(ownedProduct(), nil).Once()
		products.On("Update", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
		newTitle := "Moderated Title"
		product, svcErr := service.Update(ctx, admin, productID, &UpdateProductRequest{Title: &newTitle})

		assert.Nil(t, svcErr)
		assert.Equal(t, "Moderated Title", product.Title)
		products.AssertExpectations(t)
	})
}

func TestCloseProduct(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: uuid.New(), Role: models.RoleSeller}
	productID := uuid.New()

	t.Run("Active To Closed", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).
			Return(&models.Product{ID: productID, SellerID: owner.ID, Status: models.ProductStatusActive}, nil).Once()
		products.On("Update", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, svcErr := service.Close(ctx, owner, productID)

		assert.Nil(t, svcErr)
		assert.Equal(t, models.ProductStatusClosed, product.Status)
		products.AssertExpectations(t)
	})

	t.Run("Sold Product Cannot Close", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).
			Return(&models.Product{ID: productID, SellerID: owner.ID, Status: models.ProductStatusSold}, nil).Once()

		product, svcErr := service.Close(ctx, owner, productID)

		assert.Nil(t, product)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	})
}

func TestGetDetails(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()
	callerID := uuid.New()

	product := &models.Product{
		ID:       productID,
		SellerID: sellerID,
		Title:    "Vintage Camera",
		Status:   models.ProductStatusActive,
	}

	t.Run("Assembles Read Model", func(t *testing.T) {
		service, products, _, bids, favorites, users := newProductService()

		products.On("FindByID", ctx, productID).Return(product, nil).Once()
		phone := "+905551112233"
		users.On("FindByID", ctx, sellerID).
			Return(&models.User{ID: sellerID, FullName: "Seller Name", PhoneNumber: &phone}, nil).Once()
		bids.On("FindHighestForProduct", ctx, productID).
			Return(&models.Bid{Amount: decimal.RequireFromString("125.00")}, nil).Once()
		bids.On("CountForProduct", ctx, productID).Return(int64(3), nil).Once()
		favorites.On("Exists", ctx, callerID, productID).Return(true, nil).Once()

		details, svcErr := service.GetDetails(ctx, callerID, productID)

		assert.Nil(t, svcErr)
		assert.Equal(t, "Seller Name", details.Seller.FullName)
		assert.Equal(t, "125.00", details.HighestBid.StringFixed(2))
		assert.Equal(t, int64(3), details.BidCount)
		assert.True(t, details.IsFavorited)
	})

	t.Run("No Bids No Favorite", func(t *testing.T) {
		service, products, _, bids, favorites, users := newProductService()

		products.On("FindByID", ctx, productID).Return(product, nil).Once()
		users.On("FindByID", ctx, sellerID).
			Return(&models.User{ID: sellerID, FullName: "Seller Name"}, nil).Once()
		bids.On("FindHighestForProduct", ctx, productID).Return(nil, gorm.ErrRecordNotFound).Once()
		bids.On("CountForProduct", ctx, productID).Return(int64(0), nil).Once()
		favorites.On("Exists", ctx, callerID, productID).Return(false, nil).Once()

		details, svcErr := service.GetDetails(ctx, callerID, productID)

		assert.Nil(t, svcErr)
		assert.Nil(t, details.HighestBid)
		assert.Equal(t, int64(0), details.BidCount)
		assert.False(t, details.IsFavorited)
	})

	t.Run("Anonymous Caller Skips Favorite Lookup", func(t *testing.T) {
		service, products, _, bids, favorites, users := newProductService()

		products.On("FindByID", ctx, productID).Return(product, nil).Once()
		users.On("FindByID", ctx, sellerID).
			Return(&models.User{ID: sellerID, FullName: "Seller Name"}, nil).Once()
		bids.On("FindHighestForProduct", ctx, productID).Return(nil, gorm.ErrRecordNotFound).Once()
		bids.On("CountForProduct", ctx, productID).Return(int64(0), nil).Once()

		details, svcErr := service.GetDetails(ctx, uuid.Nil, productID)

		assert.Nil(t, svcErr)
		assert.False(t, details.IsFavorited)
		favorites.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAddProductImage(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{ID: uuid.New(), Role: models.RoleSeller}
	productID := uuid.New()

	t.Run("Owner Adds Image", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).
			Return(&models.Product{ID: productID, SellerID: owner.ID}, nil).Once()
		products.On("AddImage", ctx, mock.AnythingOfType("*models.ProductImage")).Return(nil).Once()

		image, svcErr := service.AddImage(ctx, owner, productID, &AddImageRequest{ImageURL: "data:image/png;base64,xyz"})

		assert.Nil(t, svcErr)
		assert.Equal(t, productID, image.ProductID)
		products.AssertExpectations(t)
	})

	t.Run("Foreign Seller Forbidden", func(t *testing.T) {
		service, products, _, _, _, _ := newProductService()
		products.On("FindByID", ctx, productID).
			Return(&models.Product{ID: productID, SellerID: uuid.New()}, nil).Once()

		image, svcErr := service.AddImage(ctx, owner, productID, &AddImageRequest{ImageURL: "data:image/png;base64,xyz"})

		assert.Nil(t, image)
		assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	})
}
