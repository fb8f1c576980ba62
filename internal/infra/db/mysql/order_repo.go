package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts an order record; completed orders are immutable so there is
// no upsert here.
func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	const q = `
INSERT INTO orders (id, user_id, product_id, amount, status, created_at)
VALUES (?,?,?,?,?,?);
`
	user := stringOrDash(o.UserID)
	created := o.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, o.ID, user, o.ProductID, o.Amount, o.Status, created)
	return err
}

// Latest orders per user
func (r *OrderRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, user_id, product_id, amount, status, created_at
FROM orders
WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, user, limit)
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
