package usecase

import (
	"context"
	"testing"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelSale_Success(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	publisher := &fakePublisher{}

	productID := productRepo.add("Teclado")
	saleID := seedSale(t, saleRepo, productRepo, map[uuid.UUID]string{productID: "Teclado"})

	uc := NewCancelSaleUseCase(saleRepo, publisher)
	resp, err := uc.Execute(context.Background(), saleID)
	require.NoError(t, err)

	assert.True(t, resp.IsCancelled)
	require.Equal(t, []string{event.TypeSaleCancelled}, publisher.eventTypes())
	assert.Equal(t, saleID, publisher.events[0].(event.SaleCancelled).SaleID)
}

func TestCancelSale_AlreadyCancelledRepublishes(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	publisher := &fakePublisher{}

	productID := productRepo.add("Teclado")
	saleID := seedSale(t, saleRepo, productRepo, map[uuid.UUID]string{productID: "Teclado"})

	uc := NewCancelSaleUseCase(saleRepo, publisher)
	_, err := uc.Execute(context.Background(), saleID)
	require.NoError(t, err)

	// Segunda cancelación: exitosa y vuelve a publicar el evento
	resp, err := uc.Execute(context.Background(), saleID)
	require.NoError(t, err)
	assert.True(t, resp.IsCancelled)
	assert.Equal(t, []string{event.TypeSaleCancelled, event.TypeSaleCancelled}, publisher.eventTypes())
}

func TestCancelSale_NotFound(t *testing.T) {
	uc := NewCancelSaleUseCase(newFakeSaleRepo(), &fakePublisher{})

	_, err := uc.Execute(context.Background(), uuid.New())

	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCancelSale_DeletedWhilePersisting(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	publisher := &fakePublisher{}

	productID := productRepo.add("Teclado")
	saleID := seedSale(t, saleRepo, productRepo, map[uuid.UUID]string{productID: "Teclado"})

	// La venta desaparece entre la carga y la escritura
	saleRepo.failWith = entity.ErrSaleNotFound

	uc := NewCancelSaleUseCase(saleRepo, publisher)
	_, err := uc.Execute(context.Background(), saleID)

	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Empty(t, publisher.events)
}

func TestCancelSale_NilIDRejected(t *testing.T) {
	uc := NewCancelSaleUseCase(newFakeSaleRepo(), &fakePublisher{})

	_, err := uc.Execute(context.Background(), uuid.Nil)

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
