package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// fakeProductRepo catálogo en memoria para los tests de este paquete.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = p.Name
	stored.Description = p.Description
	stored.Price = p.Price
	stored.Category = p.Category
	stored.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	if p, ok := r.products[productID]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func strPtr(s string) *string                   { return &s }
func decPtr(s string) *decimal.Decimal          { d := decimal.RequireFromString(s); return &d }
func mustCreate(t *testing.T, uc *usecase.ProductUseCase, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(in)
	require.NoError(t, err)
	return out
}

func TestProductCreate_Ok(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out := mustCreate(t, uc, dto.CreateProductRequest{
		Name:     "  Café de origen  ",
		Price:    decimal.RequireFromString("32.90"),
		Stock:    12,
		Category: "alimentos",
	})
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Café de origen", out.Name, "el nombre se guarda sin espacios colgantes")
	assert.Equal(t, int64(12), out.Stock, "el stock inicial se respeta")
	assert.True(t, out.Price.Equal(decimal.RequireFromString("32.90")))
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingFields, "nombre vacío")

	_, err = uc.Create(dto.CreateProductRequest{Name: "x", Price: decimal.RequireFromString("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "x", Stock: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

func TestProductUpdate_Parcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := mustCreate(t, uc, dto.CreateProductRequest{
		Name:        "Té verde",
		Description: "en hojas",
		Price:       decimal.RequireFromString("15.00"),
		Stock:       7,
		Category:    "alimentos",
	})

	// Solo cambia el precio: el resto conserva su valor.
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: decPtr("18.50")})
	require.NoError(t, err)
	assert.Equal(t, "Té verde", out.Name)
	assert.Equal(t, "en hojas", out.Description)
	assert.Equal(t, "alimentos", out.Category)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("18.50")))
	assert.Equal(t, int64(7), out.Stock, "update de catálogo jamás toca stock")

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: strPtr("   ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se puede dejar sin nombre")

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: decPtr("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.GetByID("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID("")
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestProductList_PorCategoria(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	mustCreate(t, uc, dto.CreateProductRequest{Name: "a", Category: "hogar"})
	mustCreate(t, uc, dto.CreateProductRequest{Name: "b", Category: "hogar"})
	mustCreate(t, uc, dto.CreateProductRequest{Name: "c", Category: "alimentos"})

	out, err := uc.List("hogar", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	for _, p := range out.Items {
		assert.Equal(t, "hogar", p.Category)
	}

	all, err := uc.List("", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := mustCreate(t, uc, dto.CreateProductRequest{Name: "a"})

	require.NoError(t, uc.Delete(created.ID))
	_, err := uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(""), domain.ErrMissingFields)
}
