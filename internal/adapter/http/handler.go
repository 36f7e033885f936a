package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"crowdfund-web/internal/adapter/http/flash"
	"crowdfund-web/internal/core/domain"
	"crowdfund-web/internal/core/port"
	"crowdfund-web/internal/metrics"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handler is the inbound HTTP adapter. It renders server-side HTML pages
// for the campaign use case and the wallet, and registers its routes on a
// chi.Router.
type Handler struct {
	svc      port.CampaignUseCase
	wallet   port.Wallet
	logger   *slog.Logger
	metrics  *metrics.Metrics
	carousel domain.Carousel
	checks   map[string]HealthCheck
	pages    *renderer
	router   chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithCarousel(c domain.Carousel) Option {
	return func(h *Handler) { h.carousel = c }
}

// WithHealthCheck adds a named check to GET /healthz.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) { h.checks[name] = check }
}

// NewHandler parses the page templates and configures all routes.
func NewHandler(svc port.CampaignUseCase, wallet port.Wallet, logger *slog.Logger, opts ...Option) (*Handler, error) {
	h := &Handler{
		svc:      svc,
		wallet:   wallet,
		logger:   logger,
		carousel: domain.NewCarousel(domain.DefaultSlides, 5*time.Second),
		checks:   make(map[string]HealthCheck),
	}
	for _, opt := range opts {
		opt(h)
	}
	pages, err := newRenderer(logger)
	if err != nil {
		return nil, err
	}
	h.pages = pages

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)

	r.Get("/", h.handleHome)
	r.Get("/carousel", h.handleCarousel)
	r.Post("/start", h.handleStart)

	r.Get("/campaign", h.handleCampaignMissing)
	r.Get("/campaign/", h.handleCampaignMissing)
	r.Get("/campaign/{contractAddress}", h.handleCampaign)
	r.Post("/campaign/{contractAddress}/tiers", h.handleAddTier)

	r.Get("/dashboard/{address}", h.handleDashboard)

	r.Get("/wallet", h.handleWallet)
	r.Post("/wallet/connect", h.handleConnect)
	r.Post("/wallet/disconnect", h.handleDisconnect)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	r.Handle("/static/*", staticFiles())

	h.router = r
	return h, nil
}

// Router returns the routes wrapped in response compression.
func (h *Handler) Router() http.Handler {
	return handlers.CompressHandler(h.router)
}

// newPage fills the data shared by every page: the connected account and
// the pending flash notice.
func (h *Handler) newPage(w http.ResponseWriter, r *http.Request, title string, body any) page {
	p := h.basePage(title, body)
	if notice, ok := flash.ReadAndClear(w, r); ok {
		p.Notice = &notice
	}
	return p
}

// basePage is newPage without consuming the flash notice.
func (h *Handler) basePage(title string, body any) page {
	p := page{Title: title, Body: body}
	if account, ok := h.wallet.Account(); ok {
		p.Account = &account
	}
	return p
}

func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.pages.render(w, status, "error", h.newPage(w, r, "Error", msg))
}

// redirect answers a form post with 303 See Other.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
