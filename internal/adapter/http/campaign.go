package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crowdfund-web/internal/adapter/http/flash"
	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
)

const (
	msgAddressNotFound = "Campaign address not found"
	msgInvalidAddress  = "Invalid campaign address"
	noticeTierAdded    = "Tier added successfully!"
)

type tierForm struct {
	Name         string
	Amount       string
	SubmissionID string
}

type campaignBody struct {
	View      *domain.CampaignView
	Editing   bool
	ModalOpen bool
	Form      tierForm
	Alert     string
	// Reload is the page URL the tier list refreshes to while loading.
	Reload string
}

func newTierForm() tierForm {
	return tierForm{Amount: "1", SubmissionID: uuid.NewString()}
}

func (h *Handler) handleCampaignMissing(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusNotFound, msgAddressNotFound)
}

// handleCampaign renders the detail page. ?edit=1 enters edit mode for the
// owner and ?modal=open additionally opens the tier form.
func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	view, ok := h.campaignView(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	editing := view.Editable && q.Get("edit") == "1"

	modal := domain.RequestModal(q.Get("modal") == "open", editing)

	h.renderCampaign(w, r, http.StatusOK, campaignBody{
		View:      view,
		Editing:   editing,
		ModalOpen: modal.IsOpen(),
		Form:      newTierForm(),
		Reload:    r.URL.RequestURI(),
	})
}

// handleAddTier submits the tier form. A confirmed transaction redirects
// back to the edit view with a notice; any failure re-renders the page
// with the modal still open, the entered values and the raw error. When
// the campaign cannot be re-read in time the error travels as a notice to
// the edit view instead.
func (h *Handler) handleAddTier(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "contractAddress")
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req := port.AddTierRequest{
		Campaign:     address,
		Name:         r.PostForm.Get("name"),
		Amount:       r.PostForm.Get("amount"),
		SubmissionID: r.PostForm.Get("submission_id"),
	}

	_, err := h.svc.AddTier(r.Context(), req)
	switch {
	case err == nil:
		flash.Write(w, r, flash.Success(noticeTierAdded))
		redirect(w, r, "/campaign/"+address+"?edit=1")
		return
	case errors.Is(err, domain.ErrMissingAddress):
		h.errorPage(w, r, http.StatusNotFound, msgAddressNotFound)
		return
	case errors.Is(err, domain.ErrInvalidAddress):
		h.errorPage(w, r, http.StatusBadRequest, msgInvalidAddress)
		return
	}

	alert := "Error: " + err.Error()
	if errors.Is(err, domain.ErrWalletNotConnected) {
		alert = noticeConnectWallet
	}
	h.logger.Warn("add tier failed",
		slog.String("campaign", address),
		slog.String("submission", req.SubmissionID),
		slog.Any("error", err))

	view, ok := h.campaignView(w, r)
	if !ok {
		return
	}
	if !view.Ready {
		flash.Write(w, r, flash.Error(alert))
		redirect(w, r, "/campaign/"+view.Address.Hex()+"?edit=1&modal=open")
		return
	}
	// The failed id is journaled; a retry from this form is a new request.
	form := newTierForm()
	form.Name, form.Amount = req.Name, req.Amount

	h.renderCampaign(w, r, http.StatusUnprocessableEntity, campaignBody{
		View:      view,
		Editing:   view.Editable,
		ModalOpen: true,
		Form:      form,
		Alert:     alert,
		Reload:    "/campaign/" + view.Address.Hex() + "?edit=1",
	})
}

// campaignView loads the campaign named in the path, rendering the error
// page itself when the address is missing or malformed.
func (h *Handler) campaignView(w http.ResponseWriter, r *http.Request) (*domain.CampaignView, bool) {
	view, err := h.svc.CampaignDetail(r.Context(), chi.URLParam(r, "contractAddress"))
	switch {
	case errors.Is(err, domain.ErrMissingAddress):
		h.errorPage(w, r, http.StatusNotFound, msgAddressNotFound)
		return nil, false
	case errors.Is(err, domain.ErrInvalidAddress):
		h.errorPage(w, r, http.StatusBadRequest, msgInvalidAddress)
		return nil, false
	case err != nil:
		h.logger.Error("campaign detail", slog.Any("error", err))
		h.errorPage(w, r, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return view, true
}

// renderCampaign renders the detail page, or the loading page reloading
// the same URL while the view is not ready. The loading page leaves a
// pending notice in place; on the detail page an error notice becomes the
// alert of an open modal.
func (h *Handler) renderCampaign(w http.ResponseWriter, r *http.Request, status int, body campaignBody) {
	if !body.View.Ready {
		h.pages.render(w, http.StatusOK, "loading", h.basePage("Loading", r.URL.RequestURI()))
		return
	}
	title := body.View.Name
	if title == "" {
		title = "Unnamed Campaign"
	}
	p := h.newPage(w, r, title, nil)
	if body.ModalOpen && body.Alert == "" && p.Notice != nil && p.Notice.Kind == flash.KindError {
		body.Alert, p.Notice = p.Notice.Message, nil
	}
	p.Body = body
	h.pages.render(w, status, "campaign", p)
}
