// Package scheduler settles journaled transactions whose confirmation was
// not observed by the request that submitted them.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/robfig/cron/v3"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
	"crowdfund-web/internal/metrics"
)

// Reconciler periodically looks up receipts for submitted transactions
// and records their final status.
type Reconciler struct {
	cron    *cron.Cron
	journal port.SubmissionJournal
	writer  port.TierWriter
	logger  *slog.Logger
	metrics *metrics.Metrics
	spec    string
	batch   int
	timeout time.Duration
}

func New(spec string, batch int, journal port.SubmissionJournal, writer port.TierWriter, logger *slog.Logger, m *metrics.Metrics) *Reconciler {
	if batch <= 0 {
		batch = 50
	}
	return &Reconciler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		journal: journal,
		writer:  writer,
		logger:  logger,
		metrics: m,
		spec:    spec,
		batch:   batch,
		timeout: 30 * time.Second,
	}
}

// Start schedules RunOnce on spec. Overlapping runs are skipped.
func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(r.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if n, err := r.RunOnce(ctx); err != nil {
			r.logger.Error("reconcile failed", slog.Any("error", err))
		} else if n > 0 {
			r.logger.Info("reconciled submissions", slog.Int("settled", n))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reconciler %q: %w", r.spec, err)
	}

	r.cron.Start()
	return nil
}

// Stop waits for a running job to finish.
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RunOnce settles every pending submission whose receipt is available and
// returns how many were settled. Per-entry failures are logged and the
// entry is retried on the next run.
func (r *Reconciler) RunOnce(ctx context.Context) (int, error) {
	pending, err := r.journal.Submitted(ctx, r.batch)
	if err != nil {
		return 0, fmt.Errorf("list submitted: %w", err)
	}

	settled := 0
	for _, sub := range pending {
		if ctx.Err() != nil {
			return settled, ctx.Err()
		}
		ok, err := r.settle(ctx, sub)
		if err != nil {
			r.logger.Warn("settle submission",
				slog.String("submission", sub.ID.String()),
				slog.Any("error", err))
			continue
		}
		if ok {
			settled++
		}
	}
	return settled, nil
}

func (r *Reconciler) settle(ctx context.Context, sub domain.Submission) (bool, error) {
	if sub.TxHash == nil {
		return false, errors.New("submitted without transaction hash")
	}
	receipt, err := r.writer.Receipt(ctx, *sub.TxHash)
	if err != nil {
		return false, err
	}
	if receipt == nil {
		return false, nil
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		if err = r.journal.MarkFailed(ctx, sub.ID, domain.ErrTxReverted.Error()); err != nil {
			return false, err
		}
		r.metrics.Reconciled(string(domain.SubmissionFailed))
		return true, nil
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	if err = r.journal.MarkConfirmed(ctx, sub.ID, block); err != nil {
		return false, err
	}
	r.metrics.Reconciled(string(domain.SubmissionConfirmed))
	return true, nil
}
