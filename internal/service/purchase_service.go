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
	ErrOrderNotPending = errors.New("only pending orders can change status")
	ErrUnknownStatus   = errors.New("unknown order status")
)

// PurchaseService manages purchase orders. Orders live in Redis only; the
// relational store holds suppliers and the catalog the lines reference.
// Receiving an order does not adjust stock levels in this revision.
type PurchaseService interface {
	CreateOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error)
	ListOrders(ctx context.Context) ([]dto.PurchaseOrderResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (*dto.PurchaseOrderResponse, error)
}

type purchaseService struct {
	orders    repository.PurchaseOrderRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

func NewPurchaseService(
	orders repository.PurchaseOrderRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
) PurchaseService {
	return &purchaseService{orders: orders, suppliers: suppliers, products: products}
}

func (s *purchaseService) CreateOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	items := make([]model.PurchaseOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, err
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.PurchaseOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}

	now := time.Now().UTC()
	order := &model.PurchaseOrder{
		ID:           uuid.New(),
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Items:        items,
		Status:       model.OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Str("supplier", supplier.Name).
		Int("lines", len(items)).
		Msg("purchase order created")

	resp := toPurchaseOrderResponse(order)
	return &resp, nil
}

func (s *purchaseService) GetOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(order)
	return &resp, nil
}

func (s *purchaseService) ListOrders(ctx context.Context) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toPurchaseOrderResponse(&orders[i]))
	}
	return out, nil
}

// UpdateStatus moves a pending order to received or cancelled. Received and
// cancelled are terminal.
func (s *purchaseService) UpdateStatus(ctx context.Context, id string, status string) (*dto.PurchaseOrderResponse, error) {
	if status != model.OrderReceived && status != model.OrderCancelled && status != model.OrderPending {
		return nil, ErrUnknownStatus
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderPending {
		return nil, ErrOrderNotPending
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(order)
	return &resp, nil
}

func toPurchaseOrderResponse(order *model.PurchaseOrder) dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(order.Items))
	total := decimal.Zero
	for _, item := range order.Items {
		lineCost := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineCost)
		items = append(items, dto.PurchaseOrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return dto.PurchaseOrderResponse{
		ID:           order.ID.String(),
		SupplierID:   order.SupplierID.String(),
		SupplierName: order.SupplierName,
		Items:        items,
		TotalCost:    total,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
}
