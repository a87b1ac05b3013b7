package cart

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/valentinalvarez/ecommerce-accounts/constant"
	"github.com/valentinalvarez/ecommerce-accounts/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	GetActiveCart(ctx context.Context, userID uint64) (*model.CartEntity, error)
	CreateCart(ctx context.Context, userID uint64) (*model.CartEntity, error)
	UpsertItem(ctx context.Context, cartID uint64, item *model.AddCartItemRequest) error
	GetCartItems(ctx context.Context, cartID uint64) ([]model.CartItem, error)
	GetCartItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItem, error)
	UpdateCartStatusTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, status constant.CartStatus) error
	AbandonStale(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getActiveCartQuery = `SELECT id, user_id, status, created_at FROM cart WHERE user_id = ? AND status = ?`
	insertCartQuery    = `INSERT INTO cart (user_id, status, created_at) VALUES (?, ?, NOW())`
	upsertItemQuery    = `INSERT INTO cart_item (cart_id, product_id, quantity) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`
	getCartItemsQuery = `SELECT ci.cart_id, ci.product_id, p.name, ci.quantity, p.price as unit_price
FROM cart_item ci
JOIN product p ON ci.product_id = p.id
WHERE ci.cart_id = ?`
	updateCartStatusQuery = `UPDATE cart SET status = ? WHERE id = ?`
	abandonStaleQuery     = `UPDATE cart SET status = ? WHERE status = ? AND created_at < ?`
)

func (s *SQL) GetActiveCart(ctx context.Context, userID uint64) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := s.conn.QueryRowxContext(ctx, getActiveCartQuery, userID, constant.CartStatusActive).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateCart(ctx context.Context, userID uint64) (*model.CartEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCartQuery, userID, constant.CartStatusActive)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.CartEntity{
		ID:        uint64(lastID),
		UserID:    userID,
		Status:    constant.CartStatusActive,
		CreatedAt: time.Now(),
	}, nil
}

func (s *SQL) UpsertItem(ctx context.Context, cartID uint64, item *model.AddCartItemRequest) error {
	_, err := s.conn.ExecContext(ctx, upsertItemQuery, cartID, item.ProductID, item.Quantity)
	return err
}

func (s *SQL) GetCartItems(ctx context.Context, cartID uint64) ([]model.CartItem, error) {
	rows, err := s.conn.QueryxContext(ctx, getCartItemsQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetCartItemsTx reads items inside a checkout transaction with the rows
// locked until the stock movements commit.
func (s *SQL) GetCartItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItem, error) {
	rows, err := tx.QueryxContext(ctx, getCartItemsQuery+" FOR UPDATE", cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (s *SQL) UpdateCartStatusTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, status constant.CartStatus) error {
	_, err := tx.ExecContext(ctx, updateCartStatusQuery, status, cartID)
	return err
}

// AbandonStale marks active carts older than the cutoff as abandoned and
// reports how many rows changed.
func (s *SQL) AbandonStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.conn.ExecContext(ctx, abandonStaleQuery, constant.CartStatusAbandoned, constant.CartStatusActive, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanItems(rows *sqlx.Rows) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
