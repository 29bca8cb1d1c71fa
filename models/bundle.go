package models

import "time"

type BundleStatus string

const (
	BundleStatusActive   BundleStatus = "active"
	BundleStatusInactive BundleStatus = "inactive"
)

// Bundle is a composite sellable. A fixed bundle carries its component list;
// a custom bundle carries none and gets its components synthesized per order
// from the buyer's selection, capped at MaxPieces.
type Bundle struct {
	ID         string            `gorm:"primaryKey" json:"id"`
	Name       string            `gorm:"not null" json:"name"`
	Price      float64           `gorm:"not null" json:"price"`
	Status     BundleStatus      `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	IsCustom   bool              `json:"is_custom"`
	MaxPieces  int               `json:"max_pieces"` // required > 0 when IsCustom
	Components []BundleComponent `gorm:"foreignKey:BundleID;constraint:OnDelete:CASCADE" json:"components"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// BundleComponent says how many units of an item one bundle unit consumes.
type BundleComponent struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	BundleID string  `gorm:"index" json:"-"`
	ItemID   string  `gorm:"not null" json:"item_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	UnitCost float64 `json:"unit_cost"` // snapshot for custom bundles, 0 for fixed ones
}
