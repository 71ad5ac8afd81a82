package main

import (
	"database/sql"
	"log"
	"os"

	productUseCase "sales/src/product/application/usecase"
	productPort "sales/src/product/domain/port"
	productCache "sales/src/product/infrastructure/cache"
	productController "sales/src/product/infrastructure/controller"
	productPersistence "sales/src/product/infrastructure/persistence"
	salesUseCase "sales/src/sales/application/usecase"
	salesPort "sales/src/sales/domain/port"
	salesController "sales/src/sales/infrastructure/controller"
	salesPersistence "sales/src/sales/infrastructure/persistence"
	salesPublisher "sales/src/sales/infrastructure/publisher"
	sharedConfig "sales/src/shared/infrastructure/config"
	"sales/src/shared/infrastructure/migrations"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Sales Service - Iniciando...")

	// Cargar .env si existe (en producción las variables vienen del entorno)
	if err := godotenv.Load(); err == nil {
		log.Println("Variables de entorno cargadas desde .env")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := getEnv("PROMETHEUS_ENABLED", "true")

	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for Sales service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Sales service")
	}

	// Configurar CORS y métricas por ruta
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedCfg.EnableMetrics = prometheusEnabled == "true"
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "sales_db")

	// Crear string de conexión para sales_db
	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a sales_db: %s@%s:%s/%s", dbUser, dbHost, dbPort, dbName)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a sales_db establecida con éxito")

			if err := migrations.Run(db); err != nil {
				log.Printf("⚠️  Advertencia: Error al ejecutar migraciones: %v", err)
				log.Println("⚠️  Continuando sin DB (solo health check)")
				db = nil
			}
		}
	}

	// Conectar a NATS para publicar eventos de dominio
	// Sin broker configurado los eventos van al log del servicio
	publisher := setupEventPublisher()

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "connected"
		if db == nil {
			dbStatus = "disconnected"
		}
		ctx.JSON(200, gin.H{
			"status":   status,
			"database": dbStatus,
		})
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar módulos
	productRepo := setupProductModule(v1, db)
	setupSalesModule(v1, db, productRepo, publisher)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Sales Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupEventPublisher conecta a NATS o cae al publicador de log
func setupEventPublisher() salesPort.EventPublisher {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		log.Println("⚠️  NATS_URL no configurado, eventos de dominio van al log")
		return salesPublisher.NewLogEventPublisher()
	}

	conn, err := nats.Connect(natsURL)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a NATS: %v", err)
		log.Println("⚠️  Continuando con eventos en el log")
		return salesPublisher.NewLogEventPublisher()
	}

	log.Printf("✅ Conexión a NATS establecida: %s", natsURL)
	return salesPublisher.NewNATSEventPublisher(conn)
}

// setupProductModule configura el módulo Product y retorna su repositorio
// para que el módulo Sales resuelva productos contra el mismo catálogo
func setupProductModule(router *gin.RouterGroup, db *sql.DB) productPort.ProductRepository {
	log.Println("Configurando módulo Product...")

	var productRepo productPort.ProductRepository
	if db != nil {
		productRepo = productCache.NewCachedProductRepository(
			productPersistence.NewProductPostgresRepository(db),
		)
	}

	var createProductUC *productUseCase.CreateProductUseCase
	var updateProductUC *productUseCase.UpdateProductUseCase
	var deleteProductUC *productUseCase.DeleteProductUseCase
	var getProductUC *productUseCase.GetProductUseCase
	var listProductsUC *productUseCase.ListProductsUseCase
	if productRepo != nil {
		createProductUC = productUseCase.NewCreateProductUseCase(productRepo)
		updateProductUC = productUseCase.NewUpdateProductUseCase(productRepo)
		deleteProductUC = productUseCase.NewDeleteProductUseCase(productRepo)
		getProductUC = productUseCase.NewGetProductUseCase(productRepo)
		listProductsUC = productUseCase.NewListProductsUseCase(productRepo)
	}

	productCtrl := productController.NewProductController(createProductUC, updateProductUC, deleteProductUC, getProductUC, listProductsUC)
	productCtrl.RegisterRoutes(router)

	log.Println("Módulo Product configurado exitosamente")
	return productRepo
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, productRepo productPort.ProductRepository, publisher salesPort.EventPublisher) {
	log.Println("Configurando módulo Sales...")

	var saleRepo salesPort.SaleRepository
	if db != nil {
		saleRepo = salesPersistence.NewSalePostgresRepository(db)
	}

	var createSaleUC *salesUseCase.CreateSaleUseCase
	var updateSaleUC *salesUseCase.UpdateSaleUseCase
	var cancelSaleUC *salesUseCase.CancelSaleUseCase
	var deleteSaleUC *salesUseCase.DeleteSaleUseCase
	var getSaleUC *salesUseCase.GetSaleUseCase
	var listSalesUC *salesUseCase.ListSalesUseCase
	if saleRepo != nil && productRepo != nil {
		createSaleUC = salesUseCase.NewCreateSaleUseCase(saleRepo, productRepo, publisher)
		updateSaleUC = salesUseCase.NewUpdateSaleUseCase(saleRepo, productRepo, publisher)
		cancelSaleUC = salesUseCase.NewCancelSaleUseCase(saleRepo, publisher)
		deleteSaleUC = salesUseCase.NewDeleteSaleUseCase(saleRepo, publisher)
		getSaleUC = salesUseCase.NewGetSaleUseCase(saleRepo)
		listSalesUC = salesUseCase.NewListSalesUseCase(saleRepo)
	}

	saleCtrl := salesController.NewSaleController(createSaleUC, updateSaleUC, cancelSaleUC, deleteSaleUC, getSaleUC, listSalesUC)
	saleCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}
