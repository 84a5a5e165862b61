package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceSchedule is a recurring preventive-maintenance due date for one
// machine. Once a completion is recorded, next_due is always
// last_completed + frequency_days.
type MaintenanceSchedule struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MachineID     uuid.UUID `gorm:"type:uuid;not null;index" json:"machine_id"`
	Machine       *Machine  `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	Description   string    `gorm:"size:1000" json:"description"`
	FrequencyDays int       `gorm:"not null;check:frequency_days > 0" json:"frequency_days"`
	LastCompleted *JSONTime `json:"last_completed,omitempty"`
	NextDue       JSONTime  `gorm:"not null;index" json:"next_due"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *MaintenanceSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// NextDueFrom computes the due date following a completion on the given day.
// Calendar-day addition, not elapsed seconds, so DST shifts and month
// boundaries behave the way a maintenance planner expects.
func (s *MaintenanceSchedule) NextDueFrom(completed time.Time) time.Time {
	return completed.AddDate(0, 0, s.FrequencyDays)
}
