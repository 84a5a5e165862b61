package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CallStatusReported   = "reported"
	CallStatusAssigned   = "assigned"
	CallStatusInProgress = "in_progress"
	CallStatusCompleted  = "completed"
)

// Call is a shift-floor issue report, optionally promoted to a work order.
type Call struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Shift       int        `gorm:"not null;check:shift BETWEEN 1 AND 3" json:"shift"`
	Line        string     `gorm:"size:100" json:"line"`
	MachineID   *uuid.UUID `gorm:"type:uuid;index" json:"machine_id,omitempty"`
	Machine     *Machine   `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
	Issue       string     `gorm:"size:1000;not null" json:"issue"`
	Resolution  *string    `gorm:"size:1000" json:"resolution,omitempty"`
	ReportedAt  JSONTime   `gorm:"not null" json:"reported_at"`
	CompletedAt *JSONTime  `json:"completed_at,omitempty"`
	WorkOrderID *uuid.UUID `gorm:"type:uuid;index" json:"work_order_id,omitempty"`
	ReporterID  *uuid.UUID `gorm:"type:uuid;index" json:"reporter_id,omitempty"`
	Status      string     `gorm:"size:20;not null;default:reported" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Call) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

func ValidCallStatus(status string) bool {
	switch status {
	case CallStatusReported, CallStatusAssigned, CallStatusInProgress, CallStatusCompleted:
		return true
	}
	return false
}

func ValidShift(shift int) bool {
	return shift >= 1 && shift <= 3
}
