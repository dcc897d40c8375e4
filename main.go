package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/config"
	"github.com/yeremiapane/restaurant-ledger/database"
	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/services"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)

	db, err := openStore(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open store: %v", err)
	}

	ledger := services.NewLedger(db)
	dishes, err := ledger.ListAvailableDishes()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to read menu: %v", err)
	}

	// flush whatever an earlier run left in the journal
	feed := services.NewChangeFeed(db)
	if _, err := feed.Drain(0, logChange); err != nil {
		utils.ErrorLogger.Fatalf("Failed to drain change journal: %v", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"driver": cfg.DBDriver,
		"dishes": len(dishes),
	}).Info("Restaurant ledger ready")
}

// openStore connects to the configured database and brings the schema up to date.
func openStore(cfg *config.Config) (*gorm.DB, error) {
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func logChange(c models.Change) error {
	utils.InfoLogger.WithFields(logrus.Fields{
		"entity": c.Entity,
		"id":     c.RecordID,
		"action": c.Action,
	}).Debug("Change")
	return nil
}
