package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	service "invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/views"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	listingCache := views.NewCache()

	invoiceService := service.NewService(invoiceRepo)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, listingCache)
	customerHandler := handler.NewCustomerHandler(customerRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/customers", customerHandler.List)

	// Invoice dashboard: cached listing plus the form-submission endpoints
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/invoices", invoiceHandler.List)
		dashboard.POST("/invoices", invoiceHandler.Create)
		dashboard.PUT("/invoices/:id", invoiceHandler.Update)
		dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)
	}
}
