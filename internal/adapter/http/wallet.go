package httpadapter

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/adapter/http/flash"
)

type walletBody struct {
	Accounts []common.Address
}

func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	body := walletBody{Accounts: h.wallet.Accounts()}
	h.pages.render(w, http.StatusOK, "wallet", h.newPage(w, r, "Wallet", body))
}

// handleConnect connects the posted keystore account.
func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	raw := r.PostFormValue("address")
	if !common.IsHexAddress(raw) {
		flash.Write(w, r, flash.Error("Error: invalid address"))
		redirect(w, r, "/wallet")
		return
	}
	if err := h.wallet.Connect(common.HexToAddress(raw)); err != nil {
		flash.Write(w, r, flash.Error("Error: "+err.Error()))
		redirect(w, r, "/wallet")
		return
	}
	flash.Write(w, r, flash.Success("Wallet connected"))
	redirect(w, r, "/wallet")
}

func (h *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	h.wallet.Disconnect()
	flash.Write(w, r, flash.Success("Wallet disconnected"))
	redirect(w, r, "/wallet")
}
