package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MachineStatusActive      = "active"
	MachineStatusInactive    = "inactive"
	MachineStatusMaintenance = "maintenance"
)

type Machine struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlantID      *uuid.UUID `gorm:"type:uuid;index" json:"plant_id,omitempty"`
	Plant        *Plant     `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Name         string     `gorm:"size:200;not null" json:"name"`
	Model        string     `gorm:"size:100" json:"model"`
	Manufacturer string     `gorm:"size:100" json:"manufacturer"`
	SerialNumber string     `gorm:"size:100;uniqueIndex;not null" json:"serial_number"`
	Status       string     `gorm:"size:20;not null;default:active" json:"status"`

	InstallationDate    *JSONTime `json:"installation_date,omitempty"`
	LastMaintenanceDate *JSONTime `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *JSONTime `json:"next_maintenance_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Machine) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

func ValidMachineStatus(status string) bool {
	switch status {
	case MachineStatusActive, MachineStatusInactive, MachineStatusMaintenance:
		return true
	}
	return false
}
