package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"repairdesk.com/repairdesk/internal/constants"
	model "repairdesk.com/repairdesk/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Job{},
		&model.Client{},
		&model.User{},
		&model.Message{},
		&model.Code{},
	); err != nil {
		return err
	}

	return seedCodes(db)
}

// seedCodes fills the lookup table. Upsert-style so repeated starts against
// the same database file stay quiet.
func seedCodes(db *gorm.DB) error {
	codes := []model.Code{
		{Kind: constants.KindStatus, Code: constants.StatusInProgress, Description: "In progress"},
		{Kind: constants.KindStatus, Code: constants.StatusAwaitingParts, Description: "Awaiting parts"},
		{Kind: constants.KindStatus, Code: constants.StatusAwaitingPick, Description: "Awaiting pickup"},
		{Kind: constants.KindStatus, Code: constants.StatusCompleted, Description: "Completed"},
		{Kind: constants.KindPriority, Code: constants.PriorityLow, Description: "Low"},
		{Kind: constants.KindPriority, Code: constants.PriorityNormal, Description: "Normal"},
		{Kind: constants.KindPriority, Code: constants.PriorityHigh, Description: "High"},
		{Kind: constants.KindRole, Code: constants.RoleAdmin, Description: "Administrator"},
		{Kind: constants.KindRole, Code: constants.RoleTechnician, Description: "Technician"},
		{Kind: constants.KindEquipmentType, Code: 1, Description: "Laptop"},
		{Kind: constants.KindEquipmentType, Code: 2, Description: "Desktop"},
		{Kind: constants.KindEquipmentType, Code: 3, Description: "Printer"},
		{Kind: constants.KindEquipmentBrand, Code: 1, Description: "Generic"},
		{Kind: constants.KindEquipmentBrand, Code: 2, Description: "HP"},
		{Kind: constants.KindEquipmentBrand, Code: 3, Description: "Lenovo"},
		{Kind: constants.KindEquipmentProcedure, Code: 1, Description: "Diagnostics"},
		{Kind: constants.KindEquipmentProcedure, Code: 2, Description: "Repair"},
		{Kind: constants.KindEquipmentProcedure, Code: 3, Description: "Maintenance"},
	}

	for _, c := range codes {
		res := db.Where(model.Code{Kind: c.Kind, Code: c.Code}).FirstOrCreate(&c)
		if res.Error != nil {
			return res.Error
		}
	}

	return nil
}
