package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/valentinalvarez/ecommerce-accounts/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase   = `SELECT id, name, category, stock, price FROM product`
	countProductsQuery = `SELECT COUNT(*) FROM product`
	getProductDetail   = `SELECT id, name, description, category, stock, price FROM product WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

// GetAvailableStockTx locks the product row so concurrent checkouts cannot
// oversell it.
func (s *SQL) GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var stock int64
	q := "SELECT stock FROM product WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &stock, q, productID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return stock, nil
}

func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, "UPDATE product SET stock = stock - ? WHERE id = ?", quantity, productID)
	return err
}
