package router

import (
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/handler"
	"github.com/Mouhib912/Event-Management-Platform/internal/infra"
	"github.com/Mouhib912/Event-Management-Platform/internal/middleware"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"
	"github.com/Mouhib912/Event-Management-Platform/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil: logout, the catalog cache and document email then degrade.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	var (
		revoker service.TokenRevoker
		checker middleware.RevocationChecker
		cache   service.CatalogCache
		queue   service.EmailEnqueuer
	)
	if rdb != nil {
		denylist := infra.NewTokenDenylist(rdb)
		revoker, checker = denylist, denylist
		cache = infra.NewJSONCache(rdb)
		queue = worker.NewDispatcher(rdb)
	}
	renderer := infra.NewPDFRenderer(cfg.LogoPath, true)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	standRepo := repository.NewStandRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	seqRepo := repository.NewSequenceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg, revoker)
	contactSvc := service.NewContactService(contactRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	clientSvc := service.NewClientService(clientRepo)
	categorySvc := service.NewCategoryService(categoryRepo, cache)
	productSvc := service.NewProductService(productRepo, categoryRepo, supplierRepo, cache)
	standSvc := service.NewStandService(standRepo, purchaseRepo, productRepo, clientRepo, seqRepo, cfg)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, standRepo, supplierRepo, productRepo, seqRepo, cfg)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, standRepo, contactRepo, productRepo, seqRepo, cfg)
	documentSvc := service.NewDocumentService(purchaseRepo, invoiceRepo, renderer, cfg)
	mailSvc := service.NewMailService(purchaseRepo, invoiceRepo, queue)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	contactsH := handler.NewContactsHandler(contactSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	standsH := handler.NewStandsHandler(standSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc, documentSvc, mailSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc, documentSvc, mailSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	owner := middleware.RequireRole(model.RoleOwner)

	public := r.Group("/api")
	{
		public.GET("/health", handler.Health(db, rdb))
		public.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	}

	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret, checker))
	{
		api.GET("/auth/me", authH.Me)
		api.POST("/auth/logout", authH.Logout)
		api.POST("/auth/register", owner, authH.Register)

		users := api.Group("/users", owner)
		{
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", contactsH.List)
			contacts.POST("", contactsH.Create)
			contacts.GET("/enterprises", contactsH.Enterprises)
			contacts.GET("/enterprises/:id/employees", contactsH.Employees)
			contacts.PUT("/:id", contactsH.Update)
			contacts.DELETE("/:id", contactsH.Delete)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", suppliersH.List)
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		sales := middleware.RequireRole(model.RoleOwner, model.RoleCommercial)
		clients := api.Group("/clients")
		{
			clients.GET("", clientsH.List)
			clients.POST("", sales, clientsH.Create)
			clients.PUT("/:id", sales, clientsH.Update)
			clients.DELETE("/:id", owner, clientsH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoriesH.List)
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		api.GET("/products", productsH.List)
		products := api.Group("/products", owner)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		stands := api.Group("/stands")
		{
			stands.GET("", standsH.List)
			stands.POST("", sales, standsH.Create)
			// creator, owner or commercial: checked in the service
			stands.PUT("/:id", standsH.Update)
			stands.GET("/:id/items", standsH.Items)
			stands.PUT("/:id/items", standsH.ReplaceItems)
			stands.POST("/:id/validate-logistics", middleware.RequireRole(model.RoleOwner, model.RoleLogistics), standsH.ValidateLogistics)
			stands.POST("/:id/validate-finance", middleware.RequireRole(model.RoleOwner, model.RoleFinance), standsH.ValidateFinance)
		}

		purchases := api.Group("/purchases")
		{
			purchases.GET("", purchasesH.List)
			purchases.POST("", purchasesH.Create)
			purchases.GET("/:id/pdf", purchasesH.PDF)
			purchases.POST("/:id/send", purchasesH.Send)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoicesH.List)
			invoices.POST("", invoicesH.Create)
			invoices.GET("/:id", invoicesH.Get)
			invoices.PUT("/:id", invoicesH.Update)
			invoices.GET("/:id/items", invoicesH.Items)
			invoices.GET("/:id/pdf", invoicesH.PDF)
			invoices.POST("/:id/send", invoicesH.Send)
		}
	}

	// Swagger UI, outside production only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
