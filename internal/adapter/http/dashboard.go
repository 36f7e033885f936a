package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

type dashboardBody struct {
	Owner   common.Address
	Listing *port.CampaignListing
}

// handleDashboard lists the campaigns owned by the address in the path.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "address")
	listing, err := h.svc.OwnerCampaigns(r.Context(), raw)
	switch {
	case errors.Is(err, domain.ErrMissingAddress), errors.Is(err, domain.ErrInvalidAddress):
		h.errorPage(w, r, http.StatusBadRequest, "Invalid address")
		return
	case err != nil:
		h.logger.Error("owner campaigns", slog.String("owner", raw), slog.Any("error", err))
		h.errorPage(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	body := dashboardBody{Owner: common.HexToAddress(raw), Listing: listing}
	h.pages.render(w, http.StatusOK, "dashboard", h.newPage(w, r, "Dashboard", body))
}
