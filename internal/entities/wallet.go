package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID             uuid.UUID
	FarmerID       uuid.UUID
	Balance        decimal.Decimal
	TotalEarned    decimal.Decimal
	TotalWithdrawn decimal.Decimal
	UpdatedAt      time.Time
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

type WalletTransaction struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	Type        TransactionType
	Status      TransactionStatus
	Amount      decimal.Decimal
	Description string
	OrderID     *uuid.UUID
	CreatedAt   time.Time
}

// EarningsSummary is the read-only aggregate returned by the earnings endpoint.
type EarningsSummary struct {
	Balance            decimal.Decimal
	TotalEarned        decimal.Decimal
	TotalWithdrawn     decimal.Decimal
	PendingWithdrawals decimal.Decimal
	RecentEarnings     []WalletTransaction
}

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
)
