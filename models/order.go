package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusPaid            OrderStatus = "paid"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
)

// Order is created exactly once per accepted bid. The unique index on BidID
// is the database-level guard against concurrent accepts producing duplicates.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	BuyerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	BidID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"bid_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'awaiting_payment'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// Payment is a synchronous mock settlement; it cannot fail and is created
// only while the order is awaiting payment.
type Payment struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"order_id"`
	Provider   string        `gorm:"size:50;not null" json:"provider"`
	PaymentRef string        `gorm:"size:100;not null" json:"payment_ref"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
