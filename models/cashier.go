package models

import "time"

// Cashier logs into a register with an id + PIN and gets a short-lived JWT.
type Cashier struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	PIN       string    `gorm:"not null" json:"-"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
