package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"crowdfund-web/internal/adapter/http/flash"
	"crowdfund-web/internal/core/domain"
)

const noticeConnectWallet = "Please connect your wallet first"

// handleHome renders the campaign grid. A failed factory read renders an
// empty grid without the "No Campaigns" message.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns", slog.Any("error", err))
		h.errorPage(w, r, http.StatusInternalServerError, "Could not load campaigns")
		return
	}
	h.pages.render(w, http.StatusOK, "home", h.newPage(w, r, "Campaigns", listing))
}

type carouselBody struct {
	Slide   domain.Slide
	Current int
	Next    int
	Dots    []int
	Refresh int
}

// handleCarousel renders one slide. The page reloads itself on the next
// slide after the carousel interval; following a dot link loads that slide
// and so restarts the timer from it.
func (h *Handler) handleCarousel(w http.ResponseWriter, r *http.Request) {
	if len(h.carousel.Slides) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	i, err := strconv.Atoi(r.URL.Query().Get("slide"))
	if err != nil {
		i = 0
	}
	i = h.carousel.Normalize(i)

	dots := make([]int, len(h.carousel.Slides))
	for d := range dots {
		dots[d] = d
	}
	body := carouselBody{
		Slide:   h.carousel.Slides[i],
		Current: i,
		Next:    h.carousel.Next(i),
		Dots:    dots,
		Refresh: h.carousel.RefreshSeconds(),
	}
	h.pages.render(w, http.StatusOK, "carousel", page{Title: body.Slide.Title, Body: body, Bare: true})
}

// handleStart sends a connected user to their dashboard.
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.StartCampaign(r.Context())
	if errors.Is(err, domain.ErrWalletNotConnected) {
		flash.Write(w, r, flash.Error(noticeConnectWallet))
		redirect(w, r, "/")
		return
	}
	if err != nil {
		h.logger.Error("start campaign", slog.Any("error", err))
		h.errorPage(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	redirect(w, r, "/dashboard/"+account.Hex())
}
