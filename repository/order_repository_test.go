package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

func TestFindByBidID_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderID := uuid.New()
	bidID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "buyer_id", "seller_id", "bid_id", "total_amount", "status"}).
		AddRow(orderID, uuid.New(), uuid.New(), uuid.New(), bidID, "125.00", models.OrderStatusAwaitingPayment)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE bid_id = .+`).
		WillReturnRows(rows)

	order, err := repo.FindByBidID(context.Background(), bidID)
	assert.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, models.OrderStatusAwaitingPayment, order.Status)
}

func TestFindByBidID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByBidID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, order)
}

func TestCreateOrder_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	order := &models.Order{
		ProductID:   uuid.New(),
		BuyerID:     uuid.New(),
		SellerID:    uuid.New(),
		BidID:       uuid.New(),
		TotalAmount: decimal.RequireFromString("125.00"),
		Status:      models.OrderStatusAwaitingPayment,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), order)
	assert.NoError(t, err)
}

func TestFindByBuyer_OrderedByNewest(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	buyerID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "buyer_id", "seller_id", "bid_id", "total_amount", "status"}).
		AddRow(uuid.New(), uuid.New(), buyerID, uuid.New(), uuid.New(), "125.00", models.OrderStatusPaid).
		AddRow(uuid.New(), uuid.New(), buyerID, uuid.New(), uuid.New(), "80.00", models.OrderStatusAwaitingPayment)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE buyer_id = .+ ORDER BY created_at DESC`).
		WillReturnRows(rows)

	orders, err := repo.FindByBuyer(context.Background(), buyerID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}
