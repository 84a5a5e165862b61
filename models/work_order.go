// models/work_order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	WorkOrderStatusPending    = "pending"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

type WorkOrder struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:2000" json:"description"`
	Status      string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	Priority    string     `gorm:"size:20;not null;default:medium;index" json:"priority"`
	MachineID   *uuid.UUID `gorm:"type:uuid;index" json:"machine_id,omitempty"`
	Machine     *Machine   `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
	PlantID     *uuid.UUID `gorm:"type:uuid;index" json:"plant_id,omitempty"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	Assignee    *User      `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`

	DueDate       *JSONTime `json:"due_date,omitempty"`
	CompletedDate *JSONTime `json:"completed_date,omitempty"`

	// URLs returned by the upload endpoint.
	Attachments datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"attachments,omitempty"`

	Parts []WorkOrderPart  `gorm:"foreignKey:WorkOrderID" json:"parts,omitempty"`
	Labor []WorkOrderLabor `gorm:"foreignKey:WorkOrderID" json:"labor,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (wo *WorkOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if wo.ID == uuid.Nil {
		wo.ID = uuid.New()
	}
	return
}

func ValidWorkOrderStatus(status string) bool {
	switch status {
	case WorkOrderStatusPending, WorkOrderStatusInProgress,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// WorkOrderPart is one consumption event against an inventory item. Creating
// one decrements the item's quantity; deleting one restores it.
type WorkOrderPart struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"work_order_id"`
	InventoryID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"inventory_id"`
	Inventory    *Inventory `gorm:"foreignKey:InventoryID" json:"inventory,omitempty"`
	QuantityUsed int        `gorm:"not null;check:quantity_used > 0" json:"quantity_used"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *WorkOrderPart) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

type WorkOrderLabor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"work_order_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HoursWorked float64   `gorm:"type:numeric(8,2);not null;check:hours_worked >= 0" json:"hours_worked"`
	LaborDate   JSONTime  `gorm:"not null" json:"labor_date"`
	Notes       *string   `gorm:"size:1000" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *WorkOrderLabor) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
