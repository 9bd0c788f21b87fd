package tests

import (
	"context"
	"testing"

	"dukapos/internal/dto"
	"dukapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProductCreateAndList(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Soap",
		Price:    decimal.NewFromInt(2500),
		Quantity: 50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Soap", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 50, list[0].Quantity)
}

func TestProductListOrderedByName(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	for _, name := range []string{"Sugar", "Bread", "Maize Flour"} {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{
			Name: name, Price: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bread", list[0].Name)
	assert.Equal(t, "Maize Flour", list[1].Name)
	assert.Equal(t, "Sugar", list[2].Name)
}

func TestProductValidation(t *testing.T) {
	svc := service.NewProductService(newStubProductRepo())

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Free stuff", Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, service.ErrPriceNotPositive)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Negative", Price: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, service.ErrPriceNotPositive)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Backorder", Price: decimal.NewFromInt(100), Quantity: -1,
	})
	assert.ErrorIs(t, err, service.ErrNegativeQuantity)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, service.ErrProductNameRequired)
}

func TestProductPartialUpdate(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Rice", Price: decimal.NewFromInt(3000), Quantity: 20,
		Description: strPtr("1kg bag"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	newPrice := decimal.NewFromInt(3200)
	updated, err := svc.Update(context.Background(), id, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	// Untouched fields survive a partial update
	assert.Equal(t, "Rice", updated.Name)
	assert.Equal(t, 20, updated.Quantity)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "1kg bag", *updated.Description)

	zero := decimal.Zero
	_, err = svc.Update(context.Background(), id, dto.UpdateProductRequest{Price: &zero})
	assert.ErrorIs(t, err, service.ErrPriceNotPositive)
}

func TestProductDelete(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Salt", Price: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), uuid.MustParse(created.ID)))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductListRemoteError(t *testing.T) {
	repo := newStubProductRepo()
	repo.failOn = "List"
	svc := service.NewProductService(repo)

	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "backend unavailable")
}
