package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BulkOrderStatus string

const (
	BulkOrderPending  BulkOrderStatus = "pending"
	BulkOrderQuoted   BulkOrderStatus = "quoted"
	BulkOrderRejected BulkOrderStatus = "rejected"
)

// BulkOrder is a consumer's quote request for a large quantity of a single
// product, answered by the owning farmer.
type BulkOrder struct {
	ID          uuid.UUID
	ConsumerID  uuid.UUID
	ProductID   uuid.UUID
	FarmerID    uuid.UUID
	Quantity    int
	TargetPrice decimal.Decimal
	QuotedPrice *decimal.Decimal
	Status      BulkOrderStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrBulkOrderNotFound = errors.New("bulk order not found")
	ErrBulkOrderClosed   = errors.New("bulk order already answered")
)
