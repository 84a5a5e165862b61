package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Plant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Location     string    `gorm:"size:255" json:"location"`
	ContactName  string    `gorm:"size:100" json:"contact_name"`
	ContactEmail string    `gorm:"size:100" json:"contact_email"`
	ContactPhone string    `gorm:"size:30" json:"contact_phone"`

	// Optional site boundary as a GeoJSON Polygon, consulted by the
	// location-check endpoint.
	Geofence datatypes.JSON `gorm:"type:jsonb" json:"geofence,omitempty"`

	Machines   []Machine   `gorm:"foreignKey:PlantID" json:"machines,omitempty"`
	Inventory  []Inventory `gorm:"foreignKey:PlantID" json:"inventory,omitempty"`
	WorkOrders []WorkOrder `gorm:"foreignKey:PlantID" json:"work_orders,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Plant) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
