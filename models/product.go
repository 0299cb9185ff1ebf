package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusSold    ProductStatus = "sold"
	ProductStatusExpired ProductStatus = "expired"
	ProductStatusClosed  ProductStatus = "closed"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Product is an auction listing. Status transitions happen lazily on
// read/write paths; there is no background sweep closing auctions.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	StartingPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"starting_price"`
	MinIncrement  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"min_increment"`
	AuctionEndAt  time.Time       `gorm:"not null" json:"auction_end_at"`
	Status        ProductStatus   `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	AcceptedBidID *uuid.UUID      `gorm:"type:uuid" json:"accepted_bid_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Images []ProductImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

// ProductImage stores an opaque URL or base64 data URL. The column is text
// because encoded payloads routinely exceed varchar limits.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
