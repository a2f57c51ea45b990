package routes

import (
	"time"

	"github.com/HarshJ166/invomax-sub000/internal/config"
	domainRepo "github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/handler"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Company       *handler.CompanyHandler
	Client        *handler.ClientHandler
	Invoice       *handler.InvoiceHandler
	Quotation     *handler.QuotationHandler
	DealerPayment *handler.DealerPaymentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *logrus.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
			BurstSize:         deps.Cfg.RateLimit.Burst,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerCompanyRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerQuotationRoutes(v1, h)
		registerDealerPaymentRoutes(v1, h)
	}

	return router
}

func registerCompanyRoutes(rg *gin.RouterGroup, h *Handlers) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.Company.Create)
		companies.GET("", h.Company.List)
		companies.GET("/:id", h.Company.Get)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
	}

	// Company-scoped listings
	scoped := rg.Group("/companies/:id")
	{
		scoped.GET("/clients", h.Client.List)
		scoped.GET("/invoices", h.Invoice.List)
		scoped.GET("/invoices/next-number", h.Invoice.NextNumber)
		scoped.GET("/invoices/archived", h.Invoice.ListArchived)
		scoped.GET("/quotations", h.Quotation.List)
		scoped.GET("/dealer-payments", h.DealerPayment.List)
		scoped.GET("/dealer-payments/archived", h.DealerPayment.ListArchived)
	}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, h *Handlers) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/hsn-summary", h.Invoice.HSNSummary)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/archived/:id/restore", h.Invoice.Restore)
	}
}

func registerQuotationRoutes(rg *gin.RouterGroup, h *Handlers) {
	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerDealerPaymentRoutes(rg *gin.RouterGroup, h *Handlers) {
	payments := rg.Group("/dealer-payments")
	{
		payments.POST("", h.DealerPayment.Create)
		payments.GET("/:id", h.DealerPayment.Get)
		payments.PUT("/:id", h.DealerPayment.Update)
		payments.PATCH("/:id/status", h.DealerPayment.UpdateStatus)
		payments.DELETE("/:id", h.DealerPayment.Delete)
		payments.POST("/archived/:id/restore", h.DealerPayment.Restore)
	}
}
