package usecase

import (
	"context"
	"errors"

	productEntity "sales/src/product/domain/entity"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeSaleRepo repositorio de ventas en memoria para los tests
type fakeSaleRepo struct {
	sales       map[uuid.UUID]*entity.Sale
	order       []uuid.UUID
	saleNumbers map[string]bool
	failWith    error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:       make(map[uuid.UUID]*entity.Sale),
		saleNumbers: make(map[string]bool),
	}
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.saleNumbers[sale.SaleNumber] {
		return nil, entity.ErrDuplicateSaleNumber
	}
	r.sales[sale.ID] = sale
	r.order = append(r.order, sale.ID)
	r.saleNumbers[sale.SaleNumber] = true
	return sale, nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, ok := r.sales[sale.ID]; !ok {
		return nil, entity.ErrSaleNotFound
	}
	r.sales[sale.ID] = sale
	return sale, nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, saleID uuid.UUID) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.sales[saleID]; !ok {
		return false, nil
	}
	delete(r.sales, saleID)
	return true, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*entity.Sale, int, error) {
	var sales []*entity.Sale
	for _, id := range r.order {
		if sale, ok := r.sales[id]; ok {
			sales = append(sales, sale)
		}
	}
	return sales, len(sales), nil
}

// fakeProductRepo catálogo en memoria para los tests
type fakeProductRepo struct {
	products map[uuid.UUID]*productEntity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*productEntity.Product)}
}

func (r *fakeProductRepo) add(title string) uuid.UUID {
	product, _ := productEntity.NewProduct(title, decimal.NewFromInt(10), "", "", "", productEntity.Rating{})
	r.products[product.ID] = product
	return product.ID
}

func (r *fakeProductRepo) Create(ctx context.Context, product *productEntity.Product) (*productEntity.Product, error) {
	r.products[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, productID uuid.UUID) (*productEntity.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, productEntity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *productEntity.Product) (*productEntity.Product, error) {
	r.products[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID uuid.UUID) (bool, error) {
	_, ok := r.products[productID]
	delete(r.products, productID)
	return ok, nil
}

func (r *fakeProductRepo) List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*productEntity.Product, int, error) {
	return nil, 0, nil
}

// fakePublisher registra los eventos publicados en orden
type fakePublisher struct {
	events   []event.Event
	failWith error
}

func (p *fakePublisher) Publish(ctx context.Context, evt event.Event) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	types := make([]string, 0, len(p.events))
	for _, evt := range p.events {
		types = append(types, evt.EventType())
	}
	return types
}

var errRepoDown = errors.New("repository unavailable")
