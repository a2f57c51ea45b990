package main

import (
	"github.com/HarshJ166/invomax-sub000/internal/application/service"
	"github.com/HarshJ166/invomax-sub000/internal/config"
	"github.com/HarshJ166/invomax-sub000/internal/infrastructure/database"
	"github.com/HarshJ166/invomax-sub000/internal/infrastructure/repository"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/handler"
	"github.com/HarshJ166/invomax-sub000/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := config.NewLogger(&cfg.Log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	dealerPaymentRepo := repository.NewDealerPaymentRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	taxService := service.NewTaxService()
	balanceService := service.NewBalanceService()
	sequenceService := service.NewSequenceService(sequenceRepo)
	archiveService := service.NewArchiveService(archiveRepo)
	companyService := service.NewCompanyService(companyRepo)
	clientService := service.NewClientService(clientRepo, companyRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, companyRepo, clientRepo, taxService, sequenceService, archiveService)
	quotationService := service.NewQuotationService(quotationRepo, companyRepo, clientRepo, taxService)
	dealerPaymentService := service.NewDealerPaymentService(dealerPaymentRepo, companyRepo, balanceService, archiveService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Company:       handler.NewCompanyHandler(companyService),
		Client:        handler.NewClientHandler(clientService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		Quotation:     handler.NewQuotationHandler(quotationService),
		DealerPayment: handler.NewDealerPaymentHandler(dealerPaymentService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: idempotencyRepo,
	})

	logger.WithField("port", cfg.App.Port).Info("Starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
