package services

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

func (l *Ledger) CreateDish(dish *models.Dish) error {
	dish.ApplyDefaults()
	if err := dish.Validate(); err != nil {
		return err
	}
	err := restoreOnError(dish, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			if err := create(tx, dish); err != nil {
				return fmt.Errorf("create dish: %w", err)
			}
			return journal(tx, entityDishes, dish.ID, models.ActionInsert)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("New dish created: %s", dish)
	return nil
}

func (l *Ledger) GetDish(id uint) (*models.Dish, error) {
	return findByID[models.Dish](l.db, "dish", id)
}

func (l *Ledger) ListDishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := l.db.Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (l *Ledger) ListDishesByCategory(category models.DishCategory) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := l.db.Where("category = ?", category).Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list dishes by category: %w", err)
	}
	return dishes, nil
}

func (l *Ledger) ListAvailableDishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := l.db.Where("available = ?", true).Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list available dishes: %w", err)
	}
	return dishes, nil
}

// UpdateDish changes the menu item only. Line items keep the unit price they
// were written with.
func (l *Ledger) UpdateDish(dish *models.Dish) error {
	dish.ApplyDefaults()
	if err := dish.Validate(); err != nil {
		return err
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Dish](tx, "dish", dish.ID); err != nil {
			return err
		}
		if err := update(tx, dish); err != nil {
			return fmt.Errorf("update dish %d: %w", dish.ID, err)
		}
		return journal(tx, entityDishes, dish.ID, models.ActionUpdate)
	})
}

// DeleteDish removes the dish together with every line item that references it
// and recomputes the totals of the orders those items belonged to.
func (l *Ledger) DeleteDish(id uint) error {
	var affected []uint
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Dish](tx, "dish", id); err != nil {
			return err
		}

		var items []models.OrderItem
		if err := tx.Where("dish_id = ?", id).Find(&items).Error; err != nil {
			return fmt.Errorf("list items of dish %d: %w", id, err)
		}

		seen := make(map[uint]bool)
		for _, item := range items {
			if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
				return fmt.Errorf("delete order item %d: %w", item.ID, err)
			}
			if err := journal(tx, entityOrderItems, item.ID, models.ActionDelete); err != nil {
				return err
			}
			if !seen[item.OrderID] {
				seen[item.OrderID] = true
				affected = append(affected, item.OrderID)
			}
		}

		if err := tx.Delete(&models.Dish{}, id).Error; err != nil {
			return fmt.Errorf("delete dish %d: %w", id, err)
		}
		if err := journal(tx, entityDishes, id, models.ActionDelete); err != nil {
			return err
		}

		sort.Slice(affected, func(i, j int) bool { return affected[i] < affected[j] })
		for _, orderID := range affected {
			if _, err := updateTotal(tx, orderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"dish_id":         id,
		"orders_affected": len(affected),
	}).Info("Dish deleted")
	return nil
}
