package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/shared/domain/apperror"
	"sales/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	createSaleUC *usecase.CreateSaleUseCase
	updateSaleUC *usecase.UpdateSaleUseCase
	cancelSaleUC *usecase.CancelSaleUseCase
	deleteSaleUC *usecase.DeleteSaleUseCase
	getSaleUC    *usecase.GetSaleUseCase
	listSalesUC  *usecase.ListSalesUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC: createSaleUC,
		updateSaleUC: updateSaleUC,
		cancelSaleUC: cancelSaleUC,
		deleteSaleUC: deleteSaleUC,
		getSaleUC:    getSaleUC,
		listSalesUC:  listSalesUC,
	}
}

// saleOrderFields campos permitidos para ordenar el listado de ventas
var saleOrderFields = []string{"sale_number", "date", "customer_name", "branch_name", "created_at"}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.POST("", c.CreateSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.POST("/:sale_id/cancel", c.CancelSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
	}

	log.Println("Rutas Sale disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales")
	log.Println("  PUT    /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales/:sale_id/cancel")
	log.Println("  DELETE /api/v1/sales/:sale_id")
}

// CreateSale maneja el registro de una venta nueva
func (c *SaleController) CreateSale(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.createSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale creation not available (database not configured)",
		})
		return
	}

	// 1. Parsear body
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, "Error creating sale", err)
		return
	}

	// 3. Responder exitosamente con 201 Created
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateSale maneja la modificación de una venta existente
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.updateSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale update not available (database not configured)",
		})
		return
	}

	// 1. Obtener sale_id del path
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	// 2. Parsear body
	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 3. Ejecutar use case
	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		respondError(ctx, "Error updating sale", err)
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// CancelSale maneja la cancelación de una venta
func (c *SaleController) CancelSale(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.cancelSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale cancellation not available (database not configured)",
		})
		return
	}

	// 1. Obtener sale_id del path
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	// 2. Ejecutar use case
	resp, err := c.cancelSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		respondError(ctx, "Error canceling sale", err)
		return
	}

	// 3. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSale maneja la eliminación física de una venta
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.deleteSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale deletion not available (database not configured)",
		})
		return
	}

	// 1. Obtener sale_id del path
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	// 2. Ejecutar use case
	if err := c.deleteSaleUC.Execute(ctx.Request.Context(), saleID); err != nil {
		respondError(ctx, "Error deleting sale", err)
		return
	}

	// 3. Responder exitosamente
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Sale deleted successfully",
	})
}

// GetSale maneja la obtención de una venta por ID
func (c *SaleController) GetSale(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.getSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale retrieval not available (database not configured)",
		})
		return
	}

	// 1. Obtener sale_id del path
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	// 2. Ejecutar use case
	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		respondError(ctx, "Error getting sale", err)
		return
	}

	// 3. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// ListSales maneja el listado de ventas con paginación
func (c *SaleController) ListSales(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.listSalesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale listing not available (database not configured)",
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
	orders := criteria.ParseOrders(ctx.Query("order"), saleOrderFields)

	// 3. Ejecutar use case
	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), page, pageSize, orders)
	if err != nil {
		respondError(ctx, "Error listing sales", err)
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// parseSaleID parsea el sale_id del path; responde 400 si es inválido
func parseSaleID(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sale_id format",
		})
		return uuid.Nil, false
	}
	return saleID, true
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
