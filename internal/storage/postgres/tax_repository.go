package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brightcomgroup/storefront/internal/domain"
)

type taxRepository struct {
	db *sql.DB
}

// NewTaxRepository создаёт PostgreSQL-реализацию TaxRepository.
func NewTaxRepository(store *Store) domain.TaxRepository {
	return &taxRepository{db: store.DB()}
}

func (r *taxRepository) Put(record domain.TaxRecord) error {
	if record.ID == "" {
		return domain.ErrProductIDRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gst_details (id, title, brand, category, product_cost, gst_percentage)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    brand = EXCLUDED.brand,
		    category = EXCLUDED.category,
		    product_cost = EXCLUDED.product_cost,
		    gst_percentage = EXCLUDED.gst_percentage
	`,
		record.ID, record.Title, record.Brand, record.Category, record.ProductCost, record.GSTPercentage,
	)
	if err != nil {
		return fmt.Errorf("upsert tax record: %w", err)
	}

	return nil
}

func (r *taxRepository) Get(productID string) (domain.TaxRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var record domain.TaxRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, brand, category, product_cost, gst_percentage
		FROM gst_details
		WHERE id = $1
	`, productID).Scan(
		&record.ID, &record.Title, &record.Brand, &record.Category, &record.ProductCost, &record.GSTPercentage,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TaxRecord{}, domain.ErrTaxRecordNotFound
		}
		return domain.TaxRecord{}, fmt.Errorf("select tax record: %w", err)
	}

	return record, nil
}

func (r *taxRepository) List() ([]domain.TaxRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, brand, category, product_cost, gst_percentage
		FROM gst_details
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list tax records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TaxRecord, 0)
	for rows.Next() {
		var record domain.TaxRecord
		if err := rows.Scan(
			&record.ID, &record.Title, &record.Brand, &record.Category, &record.ProductCost, &record.GSTPercentage,
		); err != nil {
			return nil, fmt.Errorf("scan tax record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tax records: %w", err)
	}

	return records, nil
}

var _ domain.TaxRepository = (*taxRepository)(nil)
