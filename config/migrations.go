package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"plantmaint/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250712_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Plant{}, &models.Vendor{},
					&models.Machine{}, &models.Inventory{}, &models.WorkOrder{},
					&models.WorkOrderPart{}, &models.WorkOrderLabor{},
					&models.MaintenanceSchedule{}, &models.Call{})
			},
		},
		{
			ID: "20250803_add_plant_geofence",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("ALTER TABLE plants ADD COLUMN IF NOT EXISTS geofence jsonb").Error
			},
		},
		{
			ID: "20250821_add_work_order_attachments",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("ALTER TABLE work_orders ADD COLUMN IF NOT EXISTS attachments jsonb DEFAULT '[]'").Error
			},
		},
	})
	return m.Migrate()
}
