package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"avtoservice/internal/domain/catalogs/car"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/domain/catalogs/employee"
	"avtoservice/internal/domain/catalogs/sklad"
	"avtoservice/internal/domain/currency"
	"avtoservice/internal/domain/documents/invoice"
	"avtoservice/internal/domain/documents/order"
	"avtoservice/internal/domain/events"
	"avtoservice/internal/domain/hr"
	"avtoservice/internal/domain/imports"
	"avtoservice/internal/infrastructure/cache"
	"avtoservice/internal/infrastructure/http/v1/handlers"
	"avtoservice/internal/infrastructure/http/v1/middleware"
	"avtoservice/internal/infrastructure/storage/postgres"
	"avtoservice/internal/infrastructure/storage/postgres/catalog_repo"
	"avtoservice/internal/infrastructure/storage/postgres/document_repo"
	"avtoservice/pkg/logger"
	"avtoservice/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager wraps the pool for transactional work
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Audit records entity change history; nil disables auditing
	Audit *postgres.AuditService

	// RateSource feeds the EUR/BGN converter; nil means the pegged
	// fallback rate only
	RateSource currency.RateSource
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	apiV1 := router.Group("/api/v1")
	{
		registerRoutes(apiV1, cfg)
	}

	return router
}

func registerRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	txm := cfg.TxManager
	gen := numerator.New(txm)

	// Repos are shared between services that reference each other's
	// entities (invoices snapshot customers and cars, leave records
	// update employees).
	customerRepo := catalog_repo.NewCustomerRepo(txm)
	carRepo := catalog_repo.NewCarRepo(txm)
	skladRepo := catalog_repo.NewSkladRepo(txm)
	employeeRepo := catalog_repo.NewEmployeeRepo(txm)

	// --- CUSTOMERS ---
	customerService := customer.NewService(customerRepo, txm)
	if cfg.Audit != nil {
		customerService.Hooks().OnAfterCreate(func(ctx context.Context, c *customer.Customer) error {
			return cfg.Audit.LogEntity(ctx, "customer", c.ID, postgres.AuditActionCreate, c)
		})
		customerService.Hooks().OnAfterUpdate(func(ctx context.Context, c *customer.Customer) error {
			return cfg.Audit.LogEntity(ctx, "customer", c.ID, postgres.AuditActionUpdate, c)
		})
		customerService.Hooks().OnAfterDelete(func(ctx context.Context, c *customer.Customer) error {
			return cfg.Audit.LogEntity(ctx, "customer", c.ID, postgres.AuditActionDelete, c)
		})
	}
	customerHandler := handlers.NewCustomerHandler(baseHandler, customerService)
	customers := rg.Group("/customers")
	RegisterCatalogRoutes(customers, customerHandler)
	customers.GET("/by-bulstat/:bulstat", customerHandler.GetByBulstat)

	// --- CARS ---
	carService := car.NewService(carRepo, txm, customerRepo.Exists)
	carHandler := handlers.NewCarHandler(baseHandler, carService)
	RegisterCatalogRoutes(rg.Group("/cars"), carHandler)
	customers.GET("/:id/cars", carHandler.ListByCustomer)

	// --- SKLAD (parts warehouse) ---
	skladService := sklad.NewService(skladRepo, txm)
	if cfg.Audit != nil {
		skladService.Hooks().OnAfterCreate(func(ctx context.Context, item *sklad.Item) error {
			return cfg.Audit.LogEntity(ctx, "sklad_item", item.ID, postgres.AuditActionCreate, item)
		})
		skladService.Hooks().OnAfterUpdate(func(ctx context.Context, item *sklad.Item) error {
			return cfg.Audit.LogEntity(ctx, "sklad_item", item.ID, postgres.AuditActionUpdate, item)
		})
	}
	skladHandler := handlers.NewSkladHandler(baseHandler, skladService)
	skladGroup := rg.Group("/sklad")
	RegisterCatalogRoutes(skladGroup, skladHandler)
	skladGroup.GET("/by-article/:article", skladHandler.GetByArticle)
	skladGroup.POST("/adjust-quantity", skladHandler.AdjustQuantity)

	// --- EMPLOYEES ---
	employeeService := employee.NewService(employeeRepo, txm)
	employeeHandler := handlers.NewEmployeeHandler(baseHandler, employeeService)
	employees := rg.Group("/employees")
	RegisterCatalogRoutes(employees, employeeHandler)

	// --- ORDERS ---
	orderRepo := document_repo.NewOrderRepo(txm)
	orderService := order.NewService(orderRepo, gen, txm)
	if cfg.Audit != nil {
		orderService.Hooks().OnAfterCreate(func(ctx context.Context, doc *order.Order) error {
			return cfg.Audit.LogEntity(ctx, "order", doc.ID, postgres.AuditActionCreate, doc)
		})
		orderService.Hooks().OnAfterUpdate(func(ctx context.Context, doc *order.Order) error {
			return cfg.Audit.LogEntity(ctx, "order", doc.ID, postgres.AuditActionUpdate, doc)
		})
	}
	orderHandler := handlers.NewOrderHandler(baseHandler, orderService)
	orders := rg.Group("/orders")
	RegisterDocumentRoutes(orders, orderHandler)

	// --- INVOICES ---
	invoiceRepo := document_repo.NewInvoiceRepo(txm)
	invoiceService := invoice.NewService(invoiceRepo, orderService, customerRepo, carRepo, gen, txm)
	invoiceHandler := handlers.NewInvoiceHandler(baseHandler, invoiceService)
	orders.POST("/:id/invoice", invoiceHandler.ConvertOrder)
	orders.GET("/:id/invoice", invoiceHandler.GetForOrder)
	invoices := rg.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.GET("/by-number/:number", invoiceHandler.GetByNumber)

	// --- DAYS OFF ---
	daysOffRepo := document_repo.NewDaysOffRepo(txm)
	hrService := hr.NewService(daysOffRepo, employeeRepo, txm)
	daysOffHandler := handlers.NewDaysOffHandler(baseHandler, hrService)
	daysOff := rg.Group("/days-off")
	RegisterDocumentRoutes(daysOff, daysOffHandler)
	daysOff.POST("/:id/approve", daysOffHandler.Approve)
	employees.GET("/:id/leave", daysOffHandler.LeaveSummary)
	employees.GET("/:id/days-off", daysOffHandler.ListForEmployee)

	// --- EVENTS ---
	eventRepo := document_repo.NewEventRepo(txm)
	eventService := events.NewService(eventRepo, txm)
	eventHandler := handlers.NewEventHandler(baseHandler, eventService)
	eventsGroup := rg.Group("/events")
	RegisterDocumentRoutes(eventsGroup, eventHandler)
	eventsGroup.GET("/week", eventHandler.Week)
	eventsGroup.POST("/:id/complete", eventHandler.Complete)

	// --- IMPORTS ---
	importLogRepo := document_repo.NewImportLogRepo(txm)
	importsService := imports.NewService(importLogRepo, txm)
	importsHandler := handlers.NewImportsHandler(baseHandler, importsService)
	importsGroup := rg.Group("/imports")
	importsGroup.GET("", importsHandler.List)
	importsGroup.GET("/check", importsHandler.Check)
	importsGroup.GET("/:id", importsHandler.Get)

	// --- CURRENCY ---
	rateSource := cfg.RateSource
	if rateSource == nil {
		rateSource = currency.StaticSource{}
	}
	converter := currency.NewConverter(cache.NewMemory(), rateSource)
	currencyHandler := handlers.NewCurrencyHandler(baseHandler, converter)
	currencyGroup := rg.Group("/currency")
	currencyGroup.GET("/rate", currencyHandler.Rate)
	currencyGroup.GET("/convert", currencyHandler.Convert)
}
