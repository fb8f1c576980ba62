package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts an order; completed orders are immutable, no upsert.
func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	created := o.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	q, args, err := psql.Insert("orders").
		Columns("id", "user_id", "product_id", "amount", "status", "created_at").
		Values(o.ID, stringOrDash(o.UserID), o.ProductID, o.Amount, o.Status, created).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// Latest orders per user
func (r *OrderRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	q, args, err := psql.Select("id", "user_id", "product_id", "amount", "status", "created_at").
		From("orders").
		Where(sq.Eq{"user_id": user}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
