package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoice-dashboard-backend/internal/models"
)

// CustomerLister is the read surface the customer endpoints need.
type CustomerLister interface {
	List(ctx context.Context) ([]models.Customer, error)
}

type CustomerHandler struct {
	customers CustomerLister
}

func NewCustomerHandler(customers CustomerLister) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List returns all customers, for the invoice form's customer dropdown.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list customers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
