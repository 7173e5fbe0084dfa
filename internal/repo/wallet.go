package repo

import (
	"context"
	"fmt"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var walletColumns = []string{
	"id", "farmer_id", "balance", "total_earned", "total_withdrawn", "updated_at",
}

var walletTransactionColumns = []string{
	"id", "wallet_id", "type", "status", "amount", "description", "order_id", "created_at",
}

// GetOrCreateWallet returns the farmer's wallet, creating an empty one on
// first access.
func (r *postgresRepo) GetOrCreateWallet(ctx context.Context, farmerID uuid.UUID) (entities.Wallet, error) {
	query, args := r.qb.Insert("wallets").
		Columns("farmer_id").
		Values(farmerID).
		Suffix("ON CONFLICT (farmer_id) DO UPDATE SET farmer_id = EXCLUDED.farmer_id").
		Suffix("RETURNING id, farmer_id, balance, total_earned, total_withdrawn, updated_at").
		MustSql()

	var wallet Wallet
	if err := r.getContext(ctx, &wallet, query, args...); err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to get or create wallet: %w", err)
	}
	return WalletToEntity(wallet), nil
}

// CreditWallet adds earnings to the balance and the lifetime total.
func (r *postgresRepo) CreditWallet(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	query, args := r.qb.Update("wallets").
		Set("balance", sq.Expr("balance + ?", amount)).
		Set("total_earned", sq.Expr("total_earned + ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": walletID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrWalletNotFound
	}
	return nil
}

// DebitWallet moves amount out of the balance into total_withdrawn. The
// conditional WHERE keeps the balance from going negative under concurrent
// withdrawal requests; zero affected rows means insufficient funds.
func (r *postgresRepo) DebitWallet(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error {
	query, args := r.qb.Update("wallets").
		Set("balance", sq.Expr("balance - ?", amount)).
		Set("total_withdrawn", sq.Expr("total_withdrawn + ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": walletID}).
		Where(sq.GtOrEq{"balance": amount}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrInsufficientBalance
	}
	return nil
}

func (r *postgresRepo) CreateWalletTransaction(ctx context.Context, t entities.WalletTransaction) (entities.WalletTransaction, error) {
	var orderID any
	if t.OrderID != nil {
		orderID = *t.OrderID
	}

	query, args := r.qb.Insert("wallet_transactions").
		Columns("wallet_id", "type", "status", "amount", "description", "order_id").
		Values(t.WalletID, string(t.Type), string(t.Status), t.Amount, t.Description, orderID).
		Suffix("RETURNING id, wallet_id, type, status, amount, description, order_id, created_at").
		MustSql()

	var tx WalletTransaction
	if err := r.getContext(ctx, &tx, query, args...); err != nil {
		return entities.WalletTransaction{}, fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return WalletTransactionToEntity(tx), nil
}

func (r *postgresRepo) ListWalletTransactions(ctx context.Context, walletID uuid.UUID, limit, offset uint64) ([]entities.WalletTransaction, error) {
	q := r.qb.Select(walletTransactionColumns...).
		From("wallet_transactions").
		Where(sq.Eq{"wallet_id": walletID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	query, args := q.MustSql()

	var txs []WalletTransaction
	if err := r.selectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select wallet transactions: %w", err)
	}

	result := make([]entities.WalletTransaction, 0, len(txs))
	for _, t := range txs {
		result = append(result, WalletTransactionToEntity(t))
	}
	return result, nil
}

// SumPendingDebits totals withdrawal requests that have not completed yet.
func (r *postgresRepo) SumPendingDebits(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(amount), 0)").
		From("wallet_transactions").
		Where(sq.Eq{
			"wallet_id": walletID,
			"type":      string(entities.TransactionDebit),
			"status":    string(entities.TransactionPending),
		}).
		MustSql()

	var sum decimal.Decimal
	if err := r.getContext(ctx, &sum, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending debits: %w", err)
	}
	return sum, nil
}

func (r *postgresRepo) RecentCredits(ctx context.Context, walletID uuid.UUID, limit uint64) ([]entities.WalletTransaction, error) {
	query, args := r.qb.Select(walletTransactionColumns...).
		From("wallet_transactions").
		Where(sq.Eq{
			"wallet_id": walletID,
			"type":      string(entities.TransactionCredit),
		}).
		OrderBy("created_at DESC").
		Limit(limit).
		MustSql()

	var txs []WalletTransaction
	if err := r.selectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select recent credits: %w", err)
	}

	result := make([]entities.WalletTransaction, 0, len(txs))
	for _, t := range txs {
		result = append(result, WalletTransactionToEntity(t))
	}
	return result, nil
}
