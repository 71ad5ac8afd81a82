package usecase

import (
	"context"
	"testing"

	"sales/src/sales/domain/event"
	"sales/src/shared/domain/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSale_Success(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	publisher := &fakePublisher{}

	productID := productRepo.add("Teclado")
	saleID := seedSale(t, saleRepo, productRepo, map[uuid.UUID]string{productID: "Teclado"})

	uc := NewDeleteSaleUseCase(saleRepo, publisher)
	err := uc.Execute(context.Background(), saleID)
	require.NoError(t, err)

	assert.Empty(t, saleRepo.sales)
	require.Equal(t, []string{event.TypeSaleDeleted}, publisher.eventTypes())
	assert.Equal(t, saleID, publisher.events[0].(event.SaleDeleted).SaleID)
}

func TestDeleteSale_NotFoundPublishesNothing(t *testing.T) {
	publisher := &fakePublisher{}
	uc := NewDeleteSaleUseCase(newFakeSaleRepo(), publisher)

	err := uc.Execute(context.Background(), uuid.New())

	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Empty(t, publisher.events)
}

func TestDeleteSale_NilIDRejected(t *testing.T) {
	uc := NewDeleteSaleUseCase(newFakeSaleRepo(), &fakePublisher{})

	err := uc.Execute(context.Background(), uuid.Nil)

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDeleteSale_RepositoryError(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	saleRepo.failWith = errRepoDown
	publisher := &fakePublisher{}
	uc := NewDeleteSaleUseCase(saleRepo, publisher)

	err := uc.Execute(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errRepoDown)
	assert.Empty(t, publisher.events)
}
