package router

import (
	"time"

	"dukapos/internal/config"
	"dukapos/internal/handler"
	"dukapos/internal/middleware"
	"dukapos/internal/repository"
	"dukapos/internal/service"
	"dukapos/internal/session"
	"dukapos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	purchaseRepo := repository.NewPurchaseOrderRepository(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	tokenTTL := time.Duration(cfg.JWTExpirationHours) * time.Hour
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	transactionSvc := service.NewTransactionService(transactionRepo, productRepo, customerRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo)
	reportSvc := service.NewReportService(transactionRepo)

	sessions := session.NewManager(session.NewRedisStore(rdb), cfg.DefaultLanguage)

	// Worker dispatcher — injected into handlers that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sessions)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	reportsH := handler.NewReportsHandler(reportSvc, dispatcher, cfg.PDFStoragePath)
	sessionH := handler.NewSessionHandler(sessions)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/v1/i18n", handler.I18nLanguages)
	r.GET("/v1/i18n/:lang", handler.I18nBundle)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)
		v1.POST("/users", usersH.Create)

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.GetByID)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.GetByID)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", transactionsH.Checkout)
			transactions.GET("", transactionsH.List)
			transactions.GET("/:id", transactionsH.GetByID)
		}

		purchases := v1.Group("/purchase-orders")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List)
			purchases.GET("/:id", purchasesH.GetByID)
			purchases.PATCH("/:id/status", purchasesH.UpdateStatus)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/financial", reportsH.Financial)
			reports.GET("/financial/text", reportsH.Text)
			reports.GET("/financial/html", reportsH.HTML)
			reports.GET("/financial/pdf", reportsH.PDF)
			reports.GET("/balance-sheet", reportsH.BalanceSheet)
			reports.GET("/cash-flow", reportsH.CashFlow)
			reports.POST("/email", reportsH.Email)
		}

		sess := v1.Group("/session")
		{
			sess.GET("", sessionH.State)
			sess.POST("/navigate", sessionH.Navigate)
			sess.POST("/back", sessionH.Back)
			sess.POST("/language", sessionH.SetLanguage)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
