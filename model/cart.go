package model

import (
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/constant"
)

type CartEntity struct {
	ID        uint64              `db:"id" json:"id"`
	UserID    uint64              `db:"user_id" json:"user_id"`
	Status    constant.CartStatus `db:"status" json:"status"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}

type CartItem struct {
	CartID    uint64  `db:"cart_id" json:"-"`
	ProductID uint64  `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CartDetail struct {
	CartID uint64     `json:"cart_id"`
	Status string     `json:"status"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

type CheckoutResponse struct {
	CartID      uint64    `json:"cart_id"`
	Total       float64   `json:"total"`
	PurchasedAt time.Time `json:"purchased_at"`
}
