package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory is a stocked spare part. Quantity is only ever adjusted through
// the work-order part handlers, inside a transaction holding a row lock, so
// the non-negative check never trips under concurrent consumption.
type Inventory struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlantID     *uuid.UUID `gorm:"type:uuid;index" json:"plant_id,omitempty"`
	VendorID    *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Vendor      *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"size:500" json:"description"`
	Quantity    int        `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	UnitPrice   float64    `gorm:"type:numeric(12,2);not null;default:0;check:unit_price >= 0" json:"unit_price"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *Inventory) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
