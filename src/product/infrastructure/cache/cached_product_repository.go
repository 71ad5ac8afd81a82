package cache

import (
	"context"
	"sync"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// CachedProductRepository cache en memoria de lectura para el catálogo
// Decora a otro ProductRepository: la resolución de productos durante el
// registro de ventas golpea el cache antes de ir a la base
type CachedProductRepository struct {
	inner port.ProductRepository
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Product
}

// NewCachedProductRepository crea el cache decorando al repositorio dado
func NewCachedProductRepository(inner port.ProductRepository) *CachedProductRepository {
	return &CachedProductRepository{
		inner: inner,
		byID:  make(map[uuid.UUID]*entity.Product),
	}
}

// Create delega y cachea el producto creado
func (c *CachedProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created, err := c.inner.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	c.store(created)
	return created, nil
}

// FindByID consulta el cache y cae al repositorio interno en caso de miss
func (c *CachedProductRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	c.mu.RLock()
	cached, ok := c.byID[productID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	product, err := c.inner.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	c.store(product)
	return product, nil
}

// Update delega y refresca la entrada cacheada
func (c *CachedProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	updated, err := c.inner.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	c.store(updated)
	return updated, nil
}

// Delete delega y desaloja la entrada cacheada
func (c *CachedProductRepository) Delete(ctx context.Context, productID uuid.UUID) (bool, error) {
	deleted, err := c.inner.Delete(ctx, productID)
	if err != nil {
		return false, err
	}
	if deleted {
		c.mu.Lock()
		delete(c.byID, productID)
		c.mu.Unlock()
	}
	return deleted, nil
}

// List delega sin cachear (los listados siempre reflejan la base)
func (c *CachedProductRepository) List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*entity.Product, int, error) {
	return c.inner.List(ctx, page, pageSize, orders)
}

func (c *CachedProductRepository) store(product *entity.Product) {
	c.mu.Lock()
	c.byID[product.ID] = product
	c.mu.Unlock()
}
