package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/avelikov/finboard/internal/action"
	"github.com/avelikov/finboard/internal/config"
	"github.com/avelikov/finboard/internal/domain"
)

const jsonContentType = "application/json; charset=utf-8"

type invoiceItem struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// ListInvoices serves the invoices listing, caching the rendered body until
// a mutation invalidates it.
func (h *Handler) ListInvoices(c *gin.Context) {
	if body, contentType, ok := h.cache.Get(config.InvoicesRoute); ok {
		c.Data(http.StatusOK, contentType, body)
		return
	}

	invoices, err := h.invoices.List(c.Request.Context())
	if err != nil {
		slog.Error("list invoices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to Fetch Invoices"})
		return
	}

	items := make([]invoiceItem, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, invoiceItem{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     inv.Amount,
			Status:     string(inv.Status),
			Date:       inv.Date,
		})
	}

	body, err := json.Marshal(items)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.cache.Set(config.InvoicesRoute, jsonContentType, body)
	c.Data(http.StatusOK, jsonContentType, body)
}

// GetInvoice serves a single invoice for the edit form.
func (h *Handler) GetInvoice(c *gin.Context) {
	inv, err := h.invoices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
			return
		}
		slog.Error("get invoice", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to Fetch Invoice"})
		return
	}

	c.JSON(http.StatusOK, invoiceItem{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     string(inv.Status),
		Date:       inv.Date,
	})
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	form, ok := h.formValues(c)
	if !ok {
		return
	}
	res := h.actions.CreateInvoice(c.Request.Context(), action.State{}, form)
	h.renderResult(c, res)
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	form, ok := h.formValues(c)
	if !ok {
		return
	}
	res := h.actions.UpdateInvoice(c.Request.Context(), c.Param("id"), action.State{}, form)
	h.renderResult(c, res)
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	res := h.actions.DeleteInvoice(c.Request.Context(), c.Param("id"))
	h.renderResult(c, res)
}

func (h *Handler) formValues(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form submission."})
		return nil, false
	}
	return c.Request.PostForm, true
}

// renderResult maps an action's terminal outcome onto the response: a
// redirect becomes 303 See Other, a failure State re-renders as 422 with
// the field errors, and a bare success (delete) is 204.
func (h *Handler) renderResult(c *gin.Context, res action.Result) {
	switch {
	case res.Redirect != "":
		c.Redirect(http.StatusSeeOther, res.Redirect)
	case res.State != nil:
		c.JSON(http.StatusUnprocessableEntity, res.State)
	default:
		c.Status(http.StatusNoContent)
	}
}
