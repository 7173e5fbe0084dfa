package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID         uuid.UUID
	ConsumerID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CartItem struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	ProductID   uuid.UUID
	Quantity    int
	PriceAtTime decimal.Decimal
	AddedAt     time.Time
}

// CartLine is a cart item joined with the current state of its product,
// which is what checkout validation runs against.
type CartLine struct {
	CartItem

	ProductName  string
	FarmerID     uuid.UUID
	CurrentPrice decimal.Decimal
	Stock        int
	IsActive     bool
}

// Subtotal is quantity times the price captured when the item was added,
// not the live product price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.PriceAtTime.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
)
