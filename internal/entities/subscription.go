package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionFrequency string

const (
	FrequencyWeekly   SubscriptionFrequency = "weekly"
	FrequencyBiweekly SubscriptionFrequency = "biweekly"
	FrequencyMonthly  SubscriptionFrequency = "monthly"
)

func (f SubscriptionFrequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// NextDelivery computes the next delivery date counted from a given moment.
func (f SubscriptionFrequency) NextDelivery(from time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	}
	return from
}

type Subscription struct {
	ID               uuid.UUID
	ConsumerID       uuid.UUID
	Frequency        SubscriptionFrequency
	TotalPrice       decimal.Decimal
	NextDeliveryDate time.Time
	IsActive         bool
	IsPaused         bool
	DeliveryAddress  string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []SubscriptionItem
}

type SubscriptionItem struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	Price          decimal.Decimal
}

var ErrSubscriptionNotFound = errors.New("subscription not found")
