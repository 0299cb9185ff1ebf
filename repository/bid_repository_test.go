package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestFindHighestForProduct_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBidRepository(gormDB)

	productID := uuid.New()
	bidID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "product_id", "bidder_id", "amount", "status"}).
		AddRow(bidID, productID, uuid.New(), "125.00", models.BidStatusPending)

	mock.ExpectQuery(`SELECT \* FROM "bids" WHERE product_id = .+ ORDER BY amount DESC`).
		WillReturnRows(rows)

	bid, err := repo.FindHighestForProduct(context.Background(), productID)
	assert.NoError(t, err)
	assert.Equal(t, bidID, bid.ID)
	assert.Equal(t, "125.00", bid.Amount.StringFixed(2))
}

func TestFindHighestForProduct_NoBids(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBidRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bids"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	bid, err := repo.FindHighestForProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, bid)
}

func TestCreateBid_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBidRepository(gormDB)

	bid := &models.Bid{
		ProductID: uuid.New(),
		BidderID:  uuid.New(),
		Status:    models.BidStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "bids"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), bid)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bid.ID)
}

func TestRejectOtherPending(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBidRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bids" SET "status"=.+ WHERE product_id = .+ AND id <> .+ AND status = .+`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.RejectOtherPending(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountForProduct(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBidRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bids"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountForProduct(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
