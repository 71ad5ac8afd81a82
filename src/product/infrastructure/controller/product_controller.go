package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"sales/src/product/application/request"
	"sales/src/product/application/usecase"
	"sales/src/shared/domain/apperror"
	"sales/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController maneja las peticiones HTTP para el catálogo de productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
	getProductUC    *usecase.GetProductUseCase
	listProductsUC  *usecase.ListProductsUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
	}
}

// productOrderFields campos permitidos para ordenar el listado de productos
var productOrderFields = []string{"title", "price", "category", "created_at"}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// CreateProduct maneja el alta de un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.createProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product creation not available (database not configured)",
		})
		return
	}

	// 1. Parsear body
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	resp, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, "Error creating product", err)
		return
	}

	// 3. Responder exitosamente con 201 Created
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateProduct maneja la modificación de un producto
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.updateProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product update not available (database not configured)",
		})
		return
	}

	// 1. Obtener product_id del path
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	// 2. Parsear body
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 3. Ejecutar use case
	resp, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		respondError(ctx, "Error updating product", err)
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// DeleteProduct maneja la baja de un producto
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.deleteProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product deletion not available (database not configured)",
		})
		return
	}

	// 1. Obtener product_id del path
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	// 2. Ejecutar use case
	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		respondError(ctx, "Error deleting product", err)
		return
	}

	// 3. Responder exitosamente
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// GetProduct maneja la obtención de un producto por ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.getProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product retrieval not available (database not configured)",
		})
		return
	}

	// 1. Obtener product_id del path
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	// 2. Ejecutar use case
	resp, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		respondError(ctx, "Error getting product", err)
		return
	}

	// 3. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// ListProducts maneja el listado de productos con paginación
func (c *ProductController) ListProducts(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.listProductsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product listing not available (database not configured)",
		})
		return
	}

	// 1. Obtener parámetros de paginación
	page := 0
	pageSize := 0

	if pageStr := ctx.Query("page"); pageStr != "" {
		if n, err := parsePageParam(pageStr); err == nil {
			page = n
		}
	}

	if pageSizeStr := ctx.Query("page_size"); pageSizeStr != "" {
		if n, err := parsePageParam(pageSizeStr); err == nil {
			pageSize = n
		}
	}

	// 2. Parsear ordenamiento contra los campos permitidos
	orders := criteria.ParseOrders(ctx.Query("order"), productOrderFields)

	// 3. Ejecutar use case
	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), page, pageSize, orders)
	if err != nil {
		respondError(ctx, "Error listing products", err)
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// parseProductID parsea el product_id del path; responde 400 si es inválido
func parseProductID(ctx *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product_id format",
		})
		return uuid.Nil, false
	}
	return productID, true
}

// respondError mapea los errores de aplicación a códigos HTTP
func respondError(ctx *gin.Context, message string, err error) {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": validationErr.Violations,
		})
		return
	}

	var notFoundErr *apperror.NotFoundError
	if errors.As(err, &notFoundErr) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": notFoundErr.Error(),
		})
		return
	}

	var conflictErr *apperror.ConflictError
	if errors.As(err, &conflictErr) {
		ctx.JSON(http.StatusConflict, gin.H{
			"error": conflictErr.Error(),
		})
		return
	}

	log.Printf("%s: %v", message, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// parsePageParam parsea parámetros numéricos
func parsePageParam(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}
