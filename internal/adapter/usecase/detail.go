package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/readiness"
)

// CampaignDetail reads every field of one campaign concurrently. The page
// is Ready once name, deadline, goal, balance and owner have resolved;
// description, creation date, tiers and state may lag and get lagGrace
// after that. A resolved field may still have failed: failures are logged
// and leave the field at its default.
func (u *CampaignUseCase) CampaignDetail(ctx context.Context, address string) (*domain.CampaignView, error) {
	campaign, err := domain.ParseAddress(address)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, u.readTimeout)
	g := readiness.NewGroup(readCtx, readiness.WithErrorHook(u.readFailed(campaign)))
	defer func() {
		cancel()
		g.Wait()
	}()

	name := readiness.Gate(g, "name", func(ctx context.Context) (string, error) {
		return u.reader.Name(ctx, campaign)
	})
	deadline := readiness.Gate(g, "deadline", func(ctx context.Context) (*big.Int, error) {
		return u.reader.Deadline(ctx, campaign)
	})
	goal := readiness.Gate(g, "goal", func(ctx context.Context) (*big.Int, error) {
		return u.reader.Goal(ctx, campaign)
	})
	balance := readiness.Gate(g, "balance", func(ctx context.Context) (*big.Int, error) {
		return u.reader.Balance(ctx, campaign)
	})
	owner := readiness.Gate(g, "owner", func(ctx context.Context) (common.Address, error) {
		return u.reader.Owner(ctx, campaign)
	})
	description := readiness.Lag(g, "description", func(ctx context.Context) (string, error) {
		return u.reader.Description(ctx, campaign)
	})
	creation := readiness.Lag(g, "creationDate", func(ctx context.Context) (*big.Int, error) {
		return u.reader.CreationDate(ctx, campaign)
	})
	tiers := readiness.Lag(g, "tiers", func(ctx context.Context) ([]domain.Tier, error) {
		return u.reader.Tiers(ctx, campaign)
	})
	state := readiness.Lag(g, "state", func(ctx context.Context) (domain.State, error) {
		return u.reader.State(ctx, campaign)
	})

	view := &domain.CampaignView{Address: campaign, State: domain.StateUnknown}

	if !g.WaitReady(readCtx) {
		view.Pending, _ = g.Pending()
		u.logger.Warn("campaign not ready before read deadline",
			slog.String("campaign", campaign.Hex()),
			slog.Any("pending", view.Pending))
		return view, nil
	}
	graceCtx, stop := context.WithTimeout(readCtx, u.lagGrace)
	g.WaitAll(graceCtx)
	stop()

	view.Ready = true
	view.Name, _ = name.Get()
	view.Description, _ = description.Get()

	if ts, ok := creation.Get(); ok {
		view.CreationDate = domain.DateFromUnix(ts, u.location)
	}
	if ts, ok := deadline.Get(); ok {
		view.Deadline = domain.DateFromUnix(ts, u.location)
	}
	view.DeadlinePassed = domain.DeadlinePassed(view.Deadline, u.now())

	if v, ok := goal.Get(); ok {
		view.Goal = v
	}
	if v, ok := balance.Get(); ok {
		view.Balance = v
	}
	view.Percent = domain.FundingPercent(view.Balance, view.Goal)

	// A failed tiers read is resolved; only an unanswered one stays loading.
	view.TiersLoaded = tiers.Resolved()
	view.Tiers, _ = tiers.Get()

	if v, ok := owner.Get(); ok {
		view.Owner = &v
	}
	if v, ok := state.Get(); ok {
		view.State = v
	}

	account, connected := u.wallet.Account()
	view.Editable = domain.CanEdit(view.Owner, account, connected)

	return view, nil
}

func (u *CampaignUseCase) readFailed(campaign common.Address) readiness.ErrorHook {
	return func(field string, err error) {
		u.logger.Error("contract read failed",
			slog.String("campaign", campaign.Hex()),
			slog.String("field", field),
			slog.Any("error", err))
	}
}
