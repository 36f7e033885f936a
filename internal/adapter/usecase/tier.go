package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

// AddTier submits one addTier transaction and waits for its receipt. The
// submission ID is reserved in the journal first, so a replayed form
// never reaches the writer again. Failures are returned with the raw
// error text and are not retried.
func (u *CampaignUseCase) AddTier(ctx context.Context, req port.AddTierRequest) (*domain.Submission, error) {
	campaign, err := domain.ParseAddress(req.Campaign)
	if err != nil {
		return nil, err
	}
	from, ok := u.wallet.Account()
	if !ok {
		return nil, domain.ErrWalletNotConnected
	}
	amount, err := domain.ParseTierAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.SubmissionID)
	if err != nil {
		id = uuid.New()
	}

	sub, created, err := u.journal.Reserve(ctx, domain.Submission{
		ID:         id,
		Campaign:   campaign,
		From:       from,
		Method:     domain.MethodAddTier,
		TierName:   req.Name,
		TierAmount: amount,
		Status:     domain.SubmissionReserved,
	})
	if err != nil {
		return nil, fmt.Errorf("reserve submission: %w", err)
	}
	if !created {
		return replayed(sub)
	}

	log := u.logger.With(slog.String("submission", id.String()), slog.String("campaign", campaign.Hex()))

	tx, err := u.writer.AddTier(ctx, from, campaign, req.Name, amount)
	if err != nil {
		u.fail(ctx, log, &sub, err.Error())
		return &sub, err
	}
	hash := tx.Hash()
	sub.TxHash = &hash
	sub.Status = domain.SubmissionSubmitted
	if err = u.journal.MarkSubmitted(ctx, id, hash); err != nil {
		log.Error("journal update failed", slog.Any("error", err))
	}
	log.Info("transaction submitted", slog.String("tx", hash.Hex()))

	waitCtx, cancel := context.WithTimeout(ctx, u.confirmTimeout)
	defer cancel()
	receipt, err := u.writer.WaitMined(waitCtx, tx)
	if err != nil {
		// Left as submitted; the reconciler settles it later.
		return &sub, fmt.Errorf("waiting for %s: %w", hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		u.fail(ctx, log, &sub, domain.ErrTxReverted.Error())
		return &sub, domain.ErrTxReverted
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	sub.BlockNumber = &block
	sub.Status = domain.SubmissionConfirmed
	if err = u.journal.MarkConfirmed(ctx, id, block); err != nil {
		log.Error("journal update failed", slog.Any("error", err))
	}
	log.Info("transaction confirmed", slog.Uint64("block", block))
	return &sub, nil
}

func (u *CampaignUseCase) fail(ctx context.Context, log *slog.Logger, sub *domain.Submission, reason string) {
	sub.Status = domain.SubmissionFailed
	sub.Error = reason
	if err := u.journal.MarkFailed(ctx, sub.ID, reason); err != nil {
		log.Error("journal update failed", slog.Any("error", err))
	}
	log.Warn("transaction failed", slog.String("reason", reason))
}

// replayed reports the outcome of an already journaled submission without
// issuing another write.
func replayed(sub domain.Submission) (*domain.Submission, error) {
	if !sub.Settled() {
		return &sub, domain.ErrTxInFlight
	}
	if sub.Status == domain.SubmissionFailed {
		return &sub, errors.New(sub.Error)
	}
	return &sub, nil
}
