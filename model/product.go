package model

type ProductListItem struct {
	ID       uint64  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	Stock    int64   `db:"stock" json:"stock"`
	Price    float64 `db:"price" json:"price"`
}

type ProductDetail struct {
	ID          uint64  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	Category    string  `db:"category" json:"category"`
	Stock       int64   `db:"stock" json:"stock"`
	Price       float64 `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
