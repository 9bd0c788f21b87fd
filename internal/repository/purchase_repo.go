package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"dukapos/internal/model"

	"github.com/redis/go-redis/v9"
)

const purchaseOrderHashKey = "purchase_orders"

// PurchaseOrderRepository stores purchase orders in a Redis hash keyed by
// order ID. Orders are operational scratch state rather than ledger data,
// so they live next to sessions and job queues instead of Postgres.
type PurchaseOrderRepository interface {
	Save(ctx context.Context, order *model.PurchaseOrder) error
	FindByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}

type purchaseOrderRepo struct{ rdb *redis.Client }

func NewPurchaseOrderRepository(rdb *redis.Client) PurchaseOrderRepository {
	return &purchaseOrderRepo{rdb: rdb}
}

func (r *purchaseOrderRepo) Save(ctx context.Context, order *model.PurchaseOrder) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal purchase order: %w", err)
	}
	return r.rdb.HSet(ctx, purchaseOrderHashKey, order.ID.String(), payload).Err()
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	raw, err := r.rdb.HGet(ctx, purchaseOrderHashKey, id).Result()
	if err != nil {
		return nil, err
	}
	var order model.PurchaseOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("unmarshal purchase order %s: %w", id, err)
	}
	return &order, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	entries, err := r.rdb.HGetAll(ctx, purchaseOrderHashKey).Result()
	if err != nil {
		return nil, err
	}
	orders := make([]model.PurchaseOrder, 0, len(entries))
	for id, raw := range entries {
		var order model.PurchaseOrder
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, fmt.Errorf("unmarshal purchase order %s: %w", id, err)
		}
		orders = append(orders, order)
	}
	// Hash iteration order is arbitrary; present newest first.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *purchaseOrderRepo) Delete(ctx context.Context, id string) error {
	return r.rdb.HDel(ctx, purchaseOrderHashKey, id).Err()
}
