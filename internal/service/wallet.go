package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type WalletRepo interface {
	GetOrCreateWallet(ctx context.Context, farmerID uuid.UUID) (entities.Wallet, error)
	DebitWallet(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	CreateWalletTransaction(ctx context.Context, t entities.WalletTransaction) (entities.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context, walletID uuid.UUID, limit, offset uint64) ([]entities.WalletTransaction, error)
	SumPendingDebits(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
	RecentCredits(ctx context.Context, walletID uuid.UUID, limit uint64) ([]entities.WalletTransaction, error)
}

type walletService struct {
	logger        *slog.Logger
	repo          WalletRepo
	txManager     trm.Manager
	notifier      Notifier
	minWithdrawal decimal.Decimal
}

func NewWalletService(
	logger *slog.Logger,
	repo WalletRepo,
	txManager trm.Manager,
	notifier Notifier,
	minWithdrawal float64,
) *walletService {
	return &walletService{
		logger:        logger.With(slog.String("service", "wallet")),
		repo:          repo,
		txManager:     txManager,
		notifier:      notifier,
		minWithdrawal: decimal.NewFromFloat(minWithdrawal),
	}
}

func (s *walletService) Wallet(ctx context.Context, farmerID uuid.UUID) (entities.Wallet, error) {
	return s.repo.GetOrCreateWallet(ctx, farmerID)
}

// Withdraw takes the amount off the balance immediately and records a pending
// debit for the payout. The wallet identity (balance = earned - withdrawn) is
// preserved at request time rather than at payout time.
func (s *walletService) Withdraw(ctx context.Context, farmerID uuid.UUID, amount decimal.Decimal) (entities.WalletTransaction, error) {
	if amount.LessThan(s.minWithdrawal) {
		return entities.WalletTransaction{}, entities.ErrBelowMinimum
	}

	var txn entities.WalletTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.GetOrCreateWallet(ctx, farmerID)
		if err != nil {
			return err
		}
		if err := s.repo.DebitWallet(ctx, wallet.ID, amount); err != nil {
			return err
		}

		txn, err = s.repo.CreateWalletTransaction(ctx, entities.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        entities.TransactionDebit,
			Status:      entities.TransactionPending,
			Amount:      amount,
			Description: fmt.Sprintf("Withdrawal of %s", amount.StringFixed(2)),
		})
		return err
	})
	if err != nil {
		return entities.WalletTransaction{}, err
	}

	s.notifier.Notify(ctx, farmerID, "withdrawal_requested", map[string]any{
		"transaction_id": txn.ID.String(),
		"amount":         amount.String(),
	})

	s.logger.Info("withdrawal requested",
		slog.String("farmer_id", farmerID.String()),
		slog.String("amount", amount.String()),
	)
	return txn, nil
}

func (s *walletService) Transactions(ctx context.Context, farmerID uuid.UUID, limit, offset uint64) ([]entities.WalletTransaction, error) {
	wallet, err := s.repo.GetOrCreateWallet(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListWalletTransactions(ctx, wallet.ID, limit, offset)
}

// Earnings assembles the farmer's earnings dashboard. The two aggregates are
// independent reads, so they run concurrently.
func (s *walletService) Earnings(ctx context.Context, farmerID uuid.UUID) (entities.EarningsSummary, error) {
	wallet, err := s.repo.GetOrCreateWallet(ctx, farmerID)
	if err != nil {
		return entities.EarningsSummary{}, err
	}

	summary := entities.EarningsSummary{
		Balance:        wallet.Balance,
		TotalEarned:    wallet.TotalEarned,
		TotalWithdrawn: wallet.TotalWithdrawn,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		pending, err := s.repo.SumPendingDebits(ctx, wallet.ID)
		if err != nil {
			return err
		}
		summary.PendingWithdrawals = pending
		return nil
	})
	eg.Go(func() error {
		recent, err := s.repo.RecentCredits(ctx, wallet.ID, 10)
		if err != nil {
			return err
		}
		summary.RecentEarnings = recent
		return nil
	})
	if err := eg.Wait(); err != nil {
		return entities.EarningsSummary{}, err
	}
	return summary, nil
}
