package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

// ListCampaigns reads the factory registry and builds one card per entry.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) (*port.CampaignListing, error) {
	return u.listing(ctx, func(domain.CampaignSummary) bool { return true })
}

// OwnerCampaigns lists the campaigns whose registry owner is owner.
func (u *CampaignUseCase) OwnerCampaigns(ctx context.Context, owner string) (*port.CampaignListing, error) {
	addr, err := domain.ParseAddress(owner)
	if err != nil {
		return nil, err
	}
	return u.listing(ctx, func(s domain.CampaignSummary) bool { return s.Owner == addr })
}

func (u *CampaignUseCase) listing(ctx context.Context, keep func(domain.CampaignSummary) bool) (*port.CampaignListing, error) {
	readCtx, cancel := context.WithTimeout(ctx, u.readTimeout)
	defer cancel()

	summaries, err := u.factory.AllCampaigns(readCtx)
	if err != nil {
		u.logger.Error("factory read failed", slog.Any("error", err))
		return &port.CampaignListing{}, nil
	}

	selected := make([]domain.CampaignSummary, 0, len(summaries))
	for _, s := range summaries {
		if keep(s) {
			selected = append(selected, s)
		}
	}

	cards := make([]domain.CampaignCard, len(selected))
	group, gctx := errgroup.WithContext(readCtx)
	group.SetLimit(u.listingConcurrency)
	for i, s := range selected {
		group.Go(func() error {
			cards[i] = u.card(gctx, s)
			return nil
		})
	}
	_ = group.Wait()

	return &port.CampaignListing{Loaded: true, Cards: cards}, nil
}

// card reads the per-campaign fields of a summary card. Each failed read
// only blanks its own field.
func (u *CampaignUseCase) card(ctx context.Context, s domain.CampaignSummary) domain.CampaignCard {
	c := domain.CampaignCard{Address: s.Address, Owner: s.Owner, Name: s.Name}
	log := u.logger.With(slog.String("campaign", s.Address.Hex()))

	if v, err := u.reader.Description(ctx, s.Address); err != nil {
		log.Error("contract read failed", slog.String("field", "description"), slog.Any("error", err))
	} else {
		c.Description = v
	}
	if v, err := u.reader.Goal(ctx, s.Address); err != nil {
		log.Error("contract read failed", slog.String("field", "goal"), slog.Any("error", err))
	} else {
		c.Goal = v
	}
	if v, err := u.reader.Balance(ctx, s.Address); err != nil {
		log.Error("contract read failed", slog.String("field", "balance"), slog.Any("error", err))
	} else {
		c.Balance = v
	}
	c.Percent = domain.FundingPercent(c.Balance, c.Goal)
	return c
}
