package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Dish{},
		&models.Table{},
		&models.Employee{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.Change{},
	}
}

// uniqueIndexes are the indexes the ledger's uniqueness checks rely on.
var uniqueIndexes = []struct {
	model interface{}
	name  string
}{
	{&models.Table{}, "idx_table_number"},
	{&models.Employee{}, "idx_employee_national_id"},
	{&models.Reservation{}, "idx_reservation_slot"},
}

// Migrate creates or updates the schema and checks the unique indexes exist.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	return VerifyIndexes(db)
}

func VerifyIndexes(db *gorm.DB) error {
	for _, idx := range uniqueIndexes {
		if !db.Migrator().HasIndex(idx.model, idx.name) {
			utils.ErrorLogger.Printf("Index missing: %s", idx.name)
			return fmt.Errorf("unique index %s is missing", idx.name)
		}
		utils.InfoLogger.Printf("Index verified: %s", idx.name)
	}
	return nil
}
