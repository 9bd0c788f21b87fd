package repository

import (
	"context"
	"time"

	"dukapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository persists sale headers and their line items as two
// separate operations. CreateHeader and CreateItems are intentionally NOT
// wrapped in one database transaction: if the item insert fails the header
// stays behind as an orphan. Whether the write should be atomic is an open
// question carried over from the system this replaces — see DESIGN.md.
type TransactionRepository interface {
	CreateHeader(ctx context.Context, t *model.Transaction) error
	CreateItems(ctx context.Context, items []model.TransactionItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, page, limit int) ([]model.Transaction, int64, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	SumTotals(ctx context.Context) (float64, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) CreateHeader(ctx context.Context, t *model.Transaction) error {
	// Omit Items so GORM doesn't cascade them — the service inserts them in a
	// second step after the header ID is known.
	return r.db.WithContext(ctx).Omit("Items").Create(t).Error
}

func (r *transactionRepo) CreateItems(ctx context.Context, items []model.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&t, id).Error
	return &t, err
}

// List returns sales newest-first — the sales screen's natural order.
func (r *transactionRepo) List(ctx context.Context, page, limit int) ([]model.Transaction, int64, error) {
	var txs []model.Transaction
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Transaction{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&txs).Error
	return txs, total, err
}

func (r *transactionRepo) ListBetween(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

// SumTotals returns the cash balance over all recorded sales — the balance
// sheet's current-assets figure.
func (r *transactionRepo) SumTotals(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&sum).Error
	return sum, err
}
