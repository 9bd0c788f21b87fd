package service

import (
	"context"
	"errors"
	"time"

	"dukapos/internal/dto"
	"dukapos/internal/model"
	"dukapos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart is returned before any store call is made: an empty cart
	// never reaches the backend.
	ErrEmptyCart = errors.New("cart is empty")

	ErrInsufficientPayment = errors.New("amount received is less than the total")
)

const walkInCustomerName = "Walk-in Customer"

var hundred = decimal.NewFromInt(100)

// TransactionService records sales. Checkout prices the cart from the
// catalog, applies the discount, and writes the sale in two steps: header
// first, then line items referencing the header ID. The two inserts are NOT
// atomic; a failed item insert leaves the header behind as an orphan.
type TransactionService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.TransactionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error)
}

type transactionService struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	customers    repository.CustomerRepository
}

func NewTransactionService(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
) TransactionService {
	return &transactionService{
		transactions: transactions,
		products:     products,
		customers:    customers,
	}
}

func (s *transactionService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.TransactionResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	customerName := walkInCustomerName
	var customerID *uuid.UUID
	discountPct := decimal.Zero
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, err
		}
		customer, err := s.customers.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		customerID = &customer.ID
		customerName = customer.Name
		discountPct = decimal.NewFromInt(int64(loyaltyDiscountPct(customer.LoyaltyPoints)))
	}
	// An explicit discount always wins over the loyalty-derived one.
	if req.DiscountPct != nil {
		discountPct = *req.DiscountPct
	}

	subtotal := decimal.Zero
	items := make([]model.TransactionItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, err
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(product.Price.Mul(qty))
		items = append(items, model.TransactionItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	discountAmount := subtotal.Mul(discountPct).Div(hundred).Round(2)
	if req.DiscountAmount != nil {
		discountAmount = *req.DiscountAmount
	}
	if discountAmount.GreaterThan(subtotal) {
		discountAmount = subtotal
	}
	total := subtotal.Sub(discountAmount)

	var change *decimal.Decimal
	if req.AmountReceived != nil {
		if req.AmountReceived.LessThan(total) {
			return nil, ErrInsufficientPayment
		}
		c := req.AmountReceived.Sub(total)
		change = &c
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	tx := &model.Transaction{
		CustomerID:     customerID,
		CustomerName:   customerName,
		TotalAmount:    total,
		DiscountAmount: discountAmount,
		TaxAmount:      decimal.Zero,
		PaymentMethod:  paymentMethod,
		Status:         "completed",
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.transactions.CreateHeader(ctx, tx); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TransactionID = tx.ID
	}
	if err := s.transactions.CreateItems(ctx, items); err != nil {
		// The header is already committed. It stays behind as an orphan
		// until the write path is made atomic.
		log.Error().Err(err).Str("transaction_id", tx.ID.String()).
			Msg("item insert failed after header insert; orphan header left in store")
		return nil, err
	}
	tx.Items = items

	log.Info().
		Str("transaction_id", tx.ID.String()).
		Str("total", total.String()).
		Int("items", len(items)).
		Msg("sale recorded")

	resp := s.toTransactionResponse(tx, subtotal, change)
	return &resp, nil
}

func (s *transactionService) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toTransactionResponse(tx, subtotalOf(tx), nil)
	return &resp, nil
}

func (s *transactionService) List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	txs, total, err := s.transactions.List(ctx, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		data = append(data, s.toTransactionResponse(&txs[i], subtotalOf(&txs[i]), nil))
	}
	return &dto.TransactionListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// subtotalOf recomputes the pre-discount total from the stored lines.
func subtotalOf(tx *model.Transaction) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range tx.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func (s *transactionService) toTransactionResponse(tx *model.Transaction, subtotal decimal.Decimal, change *decimal.Decimal) dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, 0, len(tx.Items))
	for _, item := range tx.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.TransactionItemResponse{
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	var customerID *string
	if tx.CustomerID != nil {
		id := tx.CustomerID.String()
		customerID = &id
	}
	return dto.TransactionResponse{
		ID:             tx.ID.String(),
		CustomerID:     customerID,
		CustomerName:   tx.CustomerName,
		Items:          items,
		Subtotal:       subtotal,
		DiscountAmount: tx.DiscountAmount,
		TaxAmount:      tx.TaxAmount,
		TotalAmount:    tx.TotalAmount,
		Change:         change,
		PaymentMethod:  tx.PaymentMethod,
		Status:         tx.Status,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
	}
}
