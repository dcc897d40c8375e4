package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

var tableNumberKey = []string{"number"}

func (l *Ledger) CreateTable(table *models.Table) error {
	table.ApplyDefaults()
	if err := table.Validate(); err != nil {
		return err
	}
	err := restoreOnError(table, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			if err := requireUnique(tx, &models.Table{}, 0, "table", tableNumberKey, "number = ?", table.Number); err != nil {
				return err
			}
			if err := create(tx, table); err != nil {
				return translate(err, "table", tableNumberKey...)
			}
			return journal(tx, entityTables, table.ID, models.ActionInsert)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("New table created: %s (status=%s)", table, table.Status)
	return nil
}

func (l *Ledger) GetTable(id uint) (*models.Table, error) {
	return findByID[models.Table](l.db, "table", id)
}

func (l *Ledger) GetTableByNumber(number int) (*models.Table, error) {
	var table models.Table
	if err := l.db.Where("number = ?", number).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "table number", ID: uint(number)}
		}
		return nil, fmt.Errorf("get table number %d: %w", number, err)
	}
	return &table, nil
}

func (l *Ledger) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := l.db.Order("number").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (l *Ledger) UpdateTable(table *models.Table) error {
	table.ApplyDefaults()
	if err := table.Validate(); err != nil {
		return err
	}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Table](tx, "table", table.ID); err != nil {
			return err
		}
		if err := requireUnique(tx, &models.Table{}, table.ID, "table", tableNumberKey, "number = ?", table.Number); err != nil {
			return err
		}
		if err := update(tx, table); err != nil {
			return translate(fmt.Errorf("update table %d: %w", table.ID, err), "table", tableNumberKey...)
		}
		return journal(tx, entityTables, table.ID, models.ActionUpdate)
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	return nil
}

// DeleteTable clears the table from its orders and deletes its reservations.
func (l *Ledger) DeleteTable(id uint) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Table](tx, "table", id); err != nil {
			return err
		}
		if err := detachOrders(tx, "table_id", id); err != nil {
			return err
		}
		if err := deleteReservations(tx, "table_id", id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Table{}, id).Error; err != nil {
			return fmt.Errorf("delete table %d: %w", id, err)
		}
		return journal(tx, entityTables, id, models.ActionDelete)
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %d deleted", id)
	return nil
}

// detachOrders nulls column on every order pointing at id.
func detachOrders(tx *gorm.DB, column string, id uint) error {
	var orderIDs []uint
	if err := tx.Model(&models.Order{}).Where(column+" = ?", id).Order("id").Pluck("id", &orderIDs).Error; err != nil {
		return fmt.Errorf("list orders by %s: %w", column, err)
	}
	if len(orderIDs) == 0 {
		return nil
	}
	if err := tx.Model(&models.Order{}).Where("id IN ?", orderIDs).Update(column, nil).Error; err != nil {
		return fmt.Errorf("clear orders.%s: %w", column, err)
	}
	for _, orderID := range orderIDs {
		if err := journal(tx, entityOrders, orderID, models.ActionUpdate); err != nil {
			return err
		}
	}
	return nil
}

func deleteReservations(tx *gorm.DB, column string, id uint) error {
	var ids []uint
	if err := tx.Model(&models.Reservation{}).Where(column+" = ?", id).Order("id").Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("list reservations by %s: %w", column, err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.Reservation{}).Error; err != nil {
		return fmt.Errorf("delete reservations by %s: %w", column, err)
	}
	for _, rid := range ids {
		if err := journal(tx, entityReservations, rid, models.ActionDelete); err != nil {
			return err
		}
	}
	return nil
}
