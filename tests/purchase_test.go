package tests

import (
	"context"
	"testing"

	"dukapos/internal/dto"
	"dukapos/internal/model"
	"dukapos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPurchaseSvc(t *testing.T) (service.PurchaseService, *model.Supplier, *model.Product) {
	t.Helper()
	orderRepo := newStubOrderRepo()
	supplierRepo := newStubSupplierRepo()
	productRepo := newStubProductRepo()

	supplier := &model.Supplier{Name: "Kariakoo Wholesalers"}
	require.NoError(t, supplierRepo.Create(context.Background(), supplier))
	product := seedProduct(t, productRepo, "Soap", 2000, 0)

	return service.NewPurchaseService(orderRepo, supplierRepo, productRepo), supplier, product
}

func TestCreatePurchaseOrder(t *testing.T) {
	svc, supplier, product := buildPurchaseSvc(t)

	resp, err := svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 10, UnitPrice: decimal.NewFromInt(1500)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderPending, resp.Status)
	assert.Equal(t, "Kariakoo Wholesalers", resp.SupplierName)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Soap", resp.Items[0].ProductName)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(15000)))
}

func TestPurchaseOrderStatusTransitions(t *testing.T) {
	svc, supplier, product := buildPurchaseSvc(t)

	created, err := svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 5, UnitPrice: decimal.NewFromInt(1000)},
		},
	})
	require.NoError(t, err)

	received, err := svc.UpdateStatus(context.Background(), created.ID, model.OrderReceived)
	require.NoError(t, err)
	assert.Equal(t, model.OrderReceived, received.Status)

	// Received is terminal
	_, err = svc.UpdateStatus(context.Background(), created.ID, model.OrderCancelled)
	assert.ErrorIs(t, err, service.ErrOrderNotPending)
}

func TestPurchaseOrderCancel(t *testing.T) {
	svc, supplier, product := buildPurchaseSvc(t)

	created, err := svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 5, UnitPrice: decimal.NewFromInt(1000)},
		},
	})
	require.NoError(t, err)

	cancelled, err := svc.UpdateStatus(context.Background(), created.ID, model.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancelled, cancelled.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, model.OrderReceived)
	assert.ErrorIs(t, err, service.ErrOrderNotPending)
}

func TestPurchaseOrderUnknownStatusAndSupplier(t *testing.T) {
	svc, supplier, product := buildPurchaseSvc(t)

	created, err := svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "shipped")
	assert.ErrorIs(t, err, service.ErrUnknownStatus)

	_, err = svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "c0ffee00-0000-0000-0000-000000000000",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	assert.Error(t, err)
}
