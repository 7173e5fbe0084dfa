package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uuid.UUID
	FarmerID     uuid.UUID
	Name         string
	Description  string
	Category     string
	Unit         string
	Price        decimal.Decimal
	Stock        int
	IsActive     bool
	IsOrganic    bool
	Rating       decimal.Decimal
	TotalReviews int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned by the conditional stock decrement
	// when the row no longer holds the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductUnavailableError names the inactive product that failed checkout validation.
type ProductUnavailableError struct {
	ProductID uuid.UUID
	Name      string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %q is no longer available", e.Name)
}

// InsufficientStockError names the product and remaining stock that failed
// checkout validation.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available", e.Name, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(p)
}

func init() {
	gob.Register(Product{})
}
