package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/pdv-negocios/docs"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/repository"
	"github.com/hugohenrick/pdv-negocios/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-negocios/internal/service"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	log    logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Executar migrações pendentes
	if err := database.RunMigrations(config); err != nil {
		return nil, err
	}

	// Repositórios de leitura, ligados ao pool. As escritas transacionais
	// passam pela unidade de trabalho.
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	reportRepo := repository.NewReportRepository(db)

	uow := repository.NewUnitOfWork(db)

	// Serviços. A alíquota padrão pode ser sobrescrita via TAX_RATE.
	taxRate, _ := strconv.ParseFloat(os.Getenv("TAX_RATE"), 64)
	saleService := service.NewSaleService(uow, saleRepo, log, taxRate)
	stockService := service.NewStockService(uow, log)
	tenantService := service.NewTenantService(uow, log)

	// Autenticação e resolução de tenant
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}
	guard := tenant.NewGuard(userRepo, repository.NewTenantValidator(tenantRepo))

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService)
	tenantController := controller.NewTenantController(tenantRepo, tenantService)
	userController := controller.NewUserController(userRepo)
	categoryController := controller.NewCategoryController(categoryRepo)
	productController := controller.NewProductController(productRepo, stockService)
	saleController := controller.NewSaleController(saleService)
	reportController := controller.NewReportController(reportRepo)

	// Router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// Login é a única rota de negócio sem autenticação
	route.SetupAuthRoutes(api, authController, jwtService)

	// Rotas autenticadas com tenant resolvido
	protected := api.Group("")
	protected.Use(auth.JWTAuthMiddleware(jwtService))
	protected.Use(tenant.Middleware(guard))

	route.SetupTenantRoutes(protected, tenantController)
	route.SetupUserRoutes(protected, userController)
	route.SetupCategoryRoutes(protected, categoryController)
	route.SetupProductRoutes(protected, productController)
	route.SetupSaleRoutes(protected, saleController)
	route.SetupReportRoutes(protected, reportController)

	return &App{
		router: router,
		db:     db,
		log:    log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
