package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

const defaultBatch = 100

// ChangeFeed hands journal rows to a consumer. There is no background loop:
// the consumer polls Drain at its own pace.
type ChangeFeed struct {
	db *gorm.DB
}

func NewChangeFeed(db *gorm.DB) *ChangeFeed {
	return &ChangeFeed{db: db}
}

// Pending lists unprocessed changes, oldest first.
func (f *ChangeFeed) Pending(limit int) ([]models.Change, error) {
	if limit <= 0 {
		limit = defaultBatch
	}
	var changes []models.Change
	if err := f.db.Where("processed = ?", false).Order("id ASC").Limit(limit).Find(&changes).Error; err != nil {
		return nil, fmt.Errorf("fetch pending changes: %w", err)
	}
	return changes, nil
}

// Drain passes up to limit pending changes to handle and marks each processed.
// If handle fails the whole batch stays pending.
func (f *ChangeFeed) Drain(limit int, handle func(models.Change) error) (int, error) {
	if limit <= 0 {
		limit = defaultBatch
	}

	var processed int
	err := f.db.Transaction(func(tx *gorm.DB) error {
		var changes []models.Change
		if err := tx.Where("processed = ?", false).
			Order("id ASC").
			Limit(limit).
			Find(&changes).Error; err != nil {
			return fmt.Errorf("fetch pending changes: %w", err)
		}

		for _, change := range changes {
			if err := handle(change); err != nil {
				return fmt.Errorf("handle change %d (%s %s #%d): %w",
					change.ID, change.Action, change.Entity, change.RecordID, err)
			}
			if err := tx.Model(&models.Change{}).
				Where("id = ?", change.ID).
				Update("processed", true).Error; err != nil {
				return fmt.Errorf("mark change %d processed: %w", change.ID, err)
			}
		}
		processed = len(changes)
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error draining changes: %v", err)
		return 0, err
	}

	if processed > 0 {
		utils.InfoLogger.Printf("Successfully processed %d changes", processed)
	}
	return processed, nil
}
