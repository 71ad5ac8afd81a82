package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	productPort "sales/src/product/domain/port"
	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
)

// CreateSaleUseCase caso de uso para registrar una venta
type CreateSaleUseCase struct {
	saleRepo    port.SaleRepository
	productRepo productPort.ProductRepository
	publisher   port.EventPublisher
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(saleRepo port.SaleRepository, productRepo productPort.ProductRepository, publisher port.EventPublisher) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Execute registra la venta:
// 1. Validar la forma de la petición (todas las violaciones juntas)
// 2. Construir el aggregate Sale
// 3. Resolver cada producto contra el catálogo y agregar los items
// 4. Persistir y publicar SaleCreated con el total posterior a la persistencia
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	if err := req.Validate().ErrOrNil(); err != nil {
		return nil, err
	}

	// Si el caller no envía número de venta, se genera uno del lado del servidor
	saleNumber := strings.TrimSpace(req.SaleNumber)
	if saleNumber == "" {
		saleNumber = generateSaleNumber()
	}

	sale := entity.NewSale(
		saleNumber,
		time.Now().UTC(),
		req.CustomerID,
		req.CustomerName,
		req.BranchID,
		req.BranchName,
	)

	for _, itemReq := range req.Items {
		if err := resolveProduct(ctx, uc.productRepo, itemReq.ProductID); err != nil {
			return nil, err
		}
		if err := addItem(sale, itemReq); err != nil {
			return nil, err
		}
	}

	created, err := uc.saleRepo.Create(ctx, sale)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateSaleNumber) {
			return nil, apperror.NewConflict(fmt.Sprintf("sale number '%s' already exists", saleNumber))
		}
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	evt := event.NewSaleCreated(created.ID, created.SaleNumber, created.TotalAmount())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		// La venta ya quedó persistida; la publicación es best-effort
		log.Printf("WARNING: Failed to publish %s: %v", evt.EventType(), err)
	}

	return response.FromSale(created), nil
}

// generateSaleNumber genera un token aleatorio de 10 caracteres
func generateSaleNumber() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return token[:10]
}
