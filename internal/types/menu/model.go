package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	AddedBy   string    `db:"added_by" json:"added_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Item struct {
	ID          int64           `db:"id" json:"id"`
	CategoryID  int64           `db:"category_id" json:"category_id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image,omitempty"`
	Featured    bool            `db:"featured" json:"featured"`
}

// ProductSales is the aggregate row behind the dashboard's top-products
// panel: how often a menu item was ordered and what it brought in.
type ProductSales struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Sales    int             `json:"sales"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SpecialItem struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image,omitempty"`
}
