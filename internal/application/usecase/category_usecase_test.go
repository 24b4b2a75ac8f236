package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/usecase"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repo
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	productsIn map[string]int // categoryID -> cantidad de productos
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[string]*entity.Category{},
		productsIn: map[string]int{},
	}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) CountProducts(_ context.Context, id string) (int, error) {
	return r.productsIn[id], nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_RecortaEspacios(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "  Vestidos  "})
	require.NoError(t, err)
	assert.Equal(t, "Vestidos", out.Name)
	assert.NotEmpty(t, out.ID)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vestidos"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vestidos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_ConProductosAsociados(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vestidos"})
	require.NoError(t, err)
	repo.productsIn[out.ID] = 3

	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse,
		"una categoría con productos no puede borrarse")
	assert.Contains(t, repo.categories, out.ID, "la categoría debe seguir existiendo")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vestidos"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.NotContains(t, repo.categories, out.ID)
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
