package tests

import (
	"context"
	"testing"

	"dukapos/internal/dto"
	"dukapos/internal/model"
	"dukapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *stubProductRepo, name string, price int64, qty int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: decimal.NewFromInt(price), Quantity: qty}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func buildCheckoutSvc() (service.TransactionService, *stubTransactionRepo, *stubProductRepo, *stubCustomerRepo) {
	txRepo := newStubTransactionRepo()
	productRepo := newStubProductRepo()
	customerRepo := newStubCustomerRepo()
	svc := service.NewTransactionService(txRepo, productRepo, customerRepo)
	return svc, txRepo, productRepo, customerRepo
}

func TestCheckoutTotalsAndDiscount(t *testing.T) {
	svc, _, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 2000, 100)
	bread := seedProduct(t, productRepo, "Bread", 1000, 100)

	pct := decimal.NewFromInt(10)
	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{
			{ProductID: soap.ID.String(), Quantity: 2},
			{ProductID: bread.ID.String(), Quantity: 2},
		},
		DiscountPct: &pct,
	})
	require.NoError(t, err)

	// subtotal 6000, 10% discount → 5400
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(6000)))
	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(600)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(5400)))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "cash", resp.PaymentMethod)
}

func TestCheckoutAbsoluteDiscountWinsOverPercent(t *testing.T) {
	svc, _, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 2000, 100)

	pct := decimal.NewFromInt(10)
	amount := decimal.NewFromInt(500)
	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items:          []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 2}},
		DiscountPct:    &pct,
		DiscountAmount: &amount,
	})
	require.NoError(t, err)

	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(3500)))

	// A discount larger than the subtotal clamps to a free sale, never negative
	big := decimal.NewFromInt(999999)
	resp, err = svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items:          []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
		DiscountAmount: &big,
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.IsZero())
}

func TestCheckoutEmptyCartRejectedBeforeAnyWrite(t *testing.T) {
	svc, txRepo, _, _ := buildCheckoutSvc()

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Empty(t, txRepo.headers, "no header written for an empty cart")
}

func TestCheckoutLoyaltyDiscountApplied(t *testing.T) {
	svc, _, productRepo, customerRepo := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 1000, 10)

	customer := &model.Customer{Name: "Asha", LoyaltyPoints: 250} // → 2%
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerID: customer.ID.String(),
		Items:      []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", resp.CustomerName)
	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(200)), "2%% of 10000")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(9800)))
}

func TestCheckoutExplicitDiscountOverridesLoyalty(t *testing.T) {
	svc, _, productRepo, customerRepo := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 1000, 10)

	customer := &model.Customer{Name: "Asha", LoyaltyPoints: 5000} // loyalty would be 10%
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	pct := decimal.NewFromInt(5)
	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerID:  customer.ID.String(),
		Items:       []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
		DiscountPct: &pct,
	})
	require.NoError(t, err)
	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(50)))
}

func TestCheckoutWalkInCustomer(t *testing.T) {
	svc, _, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 1500, 5)

	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CustomerID)
	assert.Equal(t, "Walk-in Customer", resp.CustomerName)
	assert.True(t, resp.DiscountAmount.IsZero())
}

func TestCheckoutChange(t *testing.T) {
	svc, _, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 2500, 5)

	received := decimal.NewFromInt(5000)
	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items:          []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
		AmountReceived: &received,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Change)
	assert.True(t, resp.Change.Equal(decimal.NewFromInt(2500)))

	short := decimal.NewFromInt(1000)
	_, err = svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items:          []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
		AmountReceived: &short,
	})
	assert.ErrorIs(t, err, service.ErrInsufficientPayment)
}

// The header and item inserts are two separate steps with no rollback: when
// the item insert fails the header must remain behind.
func TestCheckoutItemFailureLeavesOrphanHeader(t *testing.T) {
	svc, txRepo, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 1000, 5)
	txRepo.failItems = true

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: 1}},
	})
	require.Error(t, err)

	assert.Len(t, txRepo.headers, 1, "header persists as an orphan")
	for id := range txRepo.headers {
		assert.Empty(t, txRepo.items[id])
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	svc, txRepo, _, _ := buildCheckoutSvc()

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CartItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Empty(t, txRepo.headers)
}

func TestTransactionListNewestFirst(t *testing.T) {
	svc, _, productRepo, _ := buildCheckoutSvc()
	soap := seedProduct(t, productRepo, "Soap", 1000, 50)

	for i := 0; i < 3; i++ {
		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			Items: []dto.CartItemRequest{{ProductID: soap.ID.String(), Quantity: i + 1}},
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), dto.TransactionFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Data, 3)
	for i := 1; i < len(list.Data); i++ {
		assert.GreaterOrEqual(t, list.Data[i-1].CreatedAt, list.Data[i].CreatedAt)
	}
}
