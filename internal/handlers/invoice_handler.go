package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoice-dashboard-backend/internal/forms"
	service "invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/views"
)

type InvoiceHandler struct {
	service *service.Service
	cache   views.ViewCache
}

func NewInvoiceHandler(s *service.Service, cache views.ViewCache) *InvoiceHandler {
	return &InvoiceHandler{service: s, cache: cache}
}

// Create handles the new-invoice form. On success it invalidates the cached
// listing and sends the browser back to it; validation failures never reach
// storage.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var form forms.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Fields(err)})
		return
	}
	in, ferrs := form.Input()
	if ferrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ferrs})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		log.Error().Err(err).Msg("create invoice")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create invoice"})
		return
	}

	h.cache.Invalidate(views.InvoiceListingPath)
	c.Redirect(http.StatusSeeOther, views.InvoiceListingPath)
}

// Update handles the edit-invoice form. The id arrives in the URL, never in
// the body. An id with no matching row still counts as success.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form forms.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Fields(err)})
		return
	}
	in, ferrs := form.Input()
	if ferrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ferrs})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, in); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("update invoice")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update invoice"})
		return
	}

	h.cache.Invalidate(views.InvoiceListingPath)
	c.Redirect(http.StatusSeeOther, views.InvoiceListingPath)
}

// Delete removes an invoice and invalidates the cached listing. It answers in
// place (no redirect): the delete action fires from within the listing itself.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("delete invoice")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete invoice"})
		return
	}

	h.cache.Invalidate(views.InvoiceListingPath)
	c.Status(http.StatusNoContent)
}

// List serves the invoice listing, from cache when a rendering survives since
// the last mutation.
func (h *InvoiceHandler) List(c *gin.Context) {
	if payload, ok := h.cache.Get(views.InvoiceListingPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	invs, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list invoices")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list invoices"})
		return
	}

	payload, err := json.Marshal(gin.H{"invoices": invs})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render invoices"})
		return
	}

	h.cache.Put(views.InvoiceListingPath, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
