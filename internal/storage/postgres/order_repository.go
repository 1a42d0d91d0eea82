package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brightcomgroup/storefront/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (
			order_id, user_id, product_id, title, address, image_path,
			price, quantity, status, cancellation_reason, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		order.OrderID, order.UserID, order.ProductID, order.Title, order.Address, order.ImagePath,
		order.Price, order.Quantity, string(order.Status), order.CancellationReason, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(orderID string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT order_id, user_id, product_id, title, address, image_path,
		       price, quantity, status, cancellation_reason, created_at
		FROM orders
		WHERE order_id = $1
	`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListByUser(userID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// seq стабилизирует порядок заказов с одинаковым created_at.
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, user_id, product_id, title, address, image_path,
		       price, quantity, status, cancellation_reason, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, seq ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(orderID string, status domain.OrderStatus, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM orders WHERE order_id = $1 FOR UPDATE
	`, orderID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("lock order row: %w", err)
	}

	if status == domain.OrderStatusCancelled && !domain.ActionsFor(domain.OrderStatus(current)).Contains(domain.ActionCancel) {
		err = domain.ErrOrderNotCancellable
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    cancellation_reason = $2
		WHERE order_id = $3
	`, string(status), reason, orderID); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit status update: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	var status string

	err := row.Scan(
		&order.OrderID, &order.UserID, &order.ProductID, &order.Title, &order.Address, &order.ImagePath,
		&order.Price, &order.Quantity, &status, &order.CancellationReason, &order.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)

	return order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
