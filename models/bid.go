package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusOutbid   BidStatus = "outbid"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is an offer on a product. A pending bid is superseded (outbid) by any
// higher bid; accepted and rejected are terminal.
type Bid struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	BidderID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"bidder_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	Status    BidStatus       `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// Favorite is a composite-keyed bookmark; inserts are idempotent.
type Favorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
