package models

// Category groups items for display and for discount scoping.
type Category struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Color string `json:"color"`
}
