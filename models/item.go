package models

import "time"

// Item is a sellable inventory item. Stock is authoritative and only ever
// decremented through an order commit transaction.
type Item struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Price      float64   `gorm:"not null" json:"price"`
	Cost       float64   `json:"cost"` // 0 when unknown; profit reporting treats it as zero margin cost
	Stock      int       `gorm:"not null;default:0" json:"stock"`
	CategoryID *string   `gorm:"index" json:"category_id"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
