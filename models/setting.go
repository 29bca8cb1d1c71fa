package models

// Setting is the single store-settings row (id is always 1). HideOutOfStock
// only filters the register catalog view; it never affects pricing.
type Setting struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	HideOutOfStock bool `json:"hide_out_of_stock"`
}
