package models

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE-IN"
	OrderTypeTakeOut  OrderType = "TAKE OUT"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Order is an immutable checkout snapshot. It is created once inside the
// commit transaction and never updated afterwards.
type Order struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	Lines          []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	Subtotal       float64     `json:"subtotal"`
	DiscountCode   string      `json:"discount_code"`
	DiscountAmount float64     `json:"discount_amount"`
	Total          float64     `json:"total"`
	TotalProfit    float64     `json:"total_profit"`
	ItemCount      int         `json:"item_count"`
	LineCount      int         `json:"line_count"`
	OrderType      OrderType   `gorm:"type:VARCHAR(20)" json:"order_type"`
	CashierID      string      `gorm:"index" json:"cashier_id"`
	CashierName    string      `json:"cashier_name"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	RefID     string  `json:"ref_id"` // item id, bundle id, or synthesized custom-bundle id
	Kind      string  `json:"kind"`   // "item" or "bundle"
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	UnitCost  float64 `json:"unit_cost"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Profit    float64 `json:"profit"`
}
