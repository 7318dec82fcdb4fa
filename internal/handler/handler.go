package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/avelikov/finboard/internal/action"
	"github.com/avelikov/finboard/internal/config"
	"github.com/avelikov/finboard/internal/domain"
	"github.com/avelikov/finboard/internal/middleware"
	"github.com/avelikov/finboard/internal/webcache"
)

// InvoiceReader is the read side of the dashboard: the listing page and
// the edit form's prefill fetch.
type InvoiceReader interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
}

// Handler holds all dependencies needed by the HTTP routes.
type Handler struct {
	cfg      *config.Config
	actions  *action.Actions
	invoices InvoiceReader
	cache    *webcache.Cache
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg      *config.Config
	Actions  *action.Actions
	Invoices InvoiceReader
	Cache    *webcache.Cache
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:      deps.Cfg,
		actions:  deps.Actions,
		invoices: deps.Invoices,
		cache:    deps.Cache,
	}
}

// Register wires all routes onto the engine. Mutations live behind the
// session guard; login is rate limited.
func (h *Handler) Register(r *gin.Engine) {
	r.POST(config.LoginRoute,
		middleware.RateLimit(config.LoginRateLimit, config.LoginRateWindow),
		h.Login,
	)

	dashboard := r.Group("", middleware.RequireSession([]byte(h.cfg.SessionSecret)))
	dashboard.GET(config.InvoicesRoute, h.ListInvoices)
	dashboard.GET(config.InvoicesRoute+"/:id", h.GetInvoice)
	dashboard.POST(config.InvoicesRoute, h.CreateInvoice)
	dashboard.POST(config.InvoicesRoute+"/:id", h.UpdateInvoice)
	dashboard.POST(config.InvoicesRoute+"/:id/delete", h.DeleteInvoice)
}
