package models

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

// Discount is keyed by its own code, stored upper-cased. Matching at the
// register is case-insensitive exact; prefix search is autocomplete only.
type Discount struct {
	Code      string       `gorm:"primaryKey" json:"code"`
	Type      DiscountType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value     float64      `gorm:"not null" json:"value"`
	AppliesTo *string      `json:"applies_to"` // category id; nil = whole order
	CreatedBy string       `json:"created_by"`
	UpdatedBy string       `json:"updated_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
