package usecase

import (
	"context"
	"testing"

	"sales/src/product/application/request"
	"sales/src/product/domain/entity"
	"sales/src/shared/domain/apperror"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo repositorio en memoria para los tests
type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	r.products[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, entity.ErrProductNotFound
	}
	r.products[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID uuid.UUID) (bool, error) {
	_, ok := r.products[productID]
	delete(r.products, productID)
	return ok, nil
}

func (r *fakeProductRepo) List(ctx context.Context, page, pageSize int, orders []criteria.Order) ([]*entity.Product, int, error) {
	var products []*entity.Product
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, len(products), nil
}

func validProductRequest() *request.ProductRequest {
	return &request.ProductRequest{
		Title:  "Teclado",
		Price:  decimal.NewFromInt(50),
		Rating: request.RatingRequest{Rate: 4.5, Count: 12},
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	resp, err := uc.Execute(context.Background(), validProductRequest())
	require.NoError(t, err)

	assert.Equal(t, "Teclado", resp.Title)
	assert.NotEqual(t, uuid.Nil, resp.ProductID)
	assert.Len(t, repo.products, 1)
}

func TestCreateProduct_Invalid(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	req := &request.ProductRequest{Price: decimal.Zero, Rating: request.RatingRequest{Rate: 9}}
	_, err := uc.Execute(context.Background(), req)

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make(map[string]bool)
	for _, violation := range validationErr.Violations {
		fields[violation.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["price"])
	assert.True(t, fields["rating.rate"])
	assert.Empty(t, repo.products)
}

func TestUpdateProduct_Success(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductUseCase(repo).Execute(context.Background(), validProductRequest())
	require.NoError(t, err)

	req := validProductRequest()
	req.Title = "Teclado Pro"
	req.Price = decimal.NewFromInt(80)

	resp, err := NewUpdateProductUseCase(repo).Execute(context.Background(), created.ProductID, req)
	require.NoError(t, err)
	assert.Equal(t, "Teclado Pro", resp.Title)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	uc := NewUpdateProductUseCase(newFakeProductRepo())

	_, err := uc.Execute(context.Background(), uuid.New(), validProductRequest())

	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductUseCase(repo).Execute(context.Background(), validProductRequest())
	require.NoError(t, err)

	require.NoError(t, NewDeleteProductUseCase(repo).Execute(context.Background(), created.ProductID))
	assert.Empty(t, repo.products)

	err = NewDeleteProductUseCase(repo).Execute(context.Background(), created.ProductID)
	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductUseCase(repo).Execute(context.Background(), validProductRequest())
	require.NoError(t, err)

	resp, err := NewGetProductUseCase(repo).Execute(context.Background(), created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, created.ProductID, resp.ProductID)

	_, err = NewGetProductUseCase(repo).Execute(context.Background(), uuid.New())
	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
