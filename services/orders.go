package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

// CreateOrder stores a new order with a zero total. Items attached to order are
// written through the line-item path, after which the total reflects them.
func (l *Ledger) CreateOrder(order *models.Order) error {
	if err := restoreOnError(order, func() error { return l.createOrder(order) }); err != nil {
		return err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"type":     order.Type,
		"items":    len(order.Items),
		"total":    order.Total.StringFixed(models.MoneyPlaces),
	}).Info("Order created")
	return nil
}

func (l *Ledger) createOrder(order *models.Order) error {
	order.ApplyDefaults()
	order.Total = decimal.Zero
	if err := order.Validate(); err != nil {
		return err
	}

	// written from a copy so a rollback leaves the caller's items untouched
	items := append([]models.OrderItem(nil), order.Items...)
	order.Items = nil

	now := time.Now()
	order.CreatedAt = now
	order.OrderedAt = datatypes.NewTime(now.Hour(), now.Minute(), now.Second(), 0)

	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := checkOrderRefs(tx, order); err != nil {
			return err
		}
		if err := create(tx, order); err != nil {
			return translate(fmt.Errorf("create order: %w", err), "order")
		}
		if err := journal(tx, entityOrders, order.ID, models.ActionInsert); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := saveOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}
		fresh, err := loadOrder(tx, order.ID)
		if err != nil {
			return err
		}
		*order = *fresh
		return nil
	})
}

// GetOrder returns the order with its line items.
func (l *Ledger) GetOrder(id uint) (*models.Order, error) {
	return loadOrder(l.db, id)
}

func (l *Ledger) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := l.db.Preload("Items").Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (l *Ledger) ListOrdersByTable(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := l.db.Where("table_id = ?", tableID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders of table %d: %w", tableID, err)
	}
	return orders, nil
}

func (l *Ledger) ListOrdersByEmployee(employeeID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := l.db.Where("employee_id = ?", employeeID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders of employee %d: %w", employeeID, err)
	}
	return orders, nil
}

// UpdateOrder writes status, type, table and employee. The total and the
// creation stamps are left as stored; order is reloaded on success.
func (l *Ledger) UpdateOrder(order *models.Order) error {
	order.ApplyDefaults()
	if err := order.Validate(); err != nil {
		return err
	}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Order](tx, "order", order.ID); err != nil {
			return err
		}
		if err := checkOrderRefs(tx, order); err != nil {
			return err
		}
		if err := update(tx, order, "total", "ordered_at"); err != nil {
			return translate(fmt.Errorf("update order %d: %w", order.ID, err), "order")
		}
		if err := journal(tx, entityOrders, order.ID, models.ActionUpdate); err != nil {
			return err
		}
		fresh, err := loadOrder(tx, order.ID)
		if err != nil {
			return err
		}
		*order = *fresh
		return nil
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Order #%d updated (status=%s)", order.ID, order.Status)
	return nil
}

// DeleteOrder deletes the order and its line items.
func (l *Ledger) DeleteOrder(id uint) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Order](tx, "order", id); err != nil {
			return err
		}
		var itemIDs []uint
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", id).Order("id").Pluck("id", &itemIDs).Error; err != nil {
			return fmt.Errorf("list items of order %d: %w", id, err)
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("id IN ?", itemIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return fmt.Errorf("delete items of order %d: %w", id, err)
			}
			for _, itemID := range itemIDs {
				if err := journal(tx, entityOrderItems, itemID, models.ActionDelete); err != nil {
					return err
				}
			}
		}
		if err := tx.Delete(&models.Order{}, id).Error; err != nil {
			return fmt.Errorf("delete order %d: %w", id, err)
		}
		return journal(tx, entityOrders, id, models.ActionDelete)
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Order #%d deleted", id)
	return nil
}

// UpdateTotal recomputes the order total from its current line items and
// stores it.
func (l *Ledger) UpdateTotal(orderID uint) (*models.Order, error) {
	var order *models.Order
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = updateTotal(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func loadOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	return findByID[models.Order](tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}), "order", id)
}

func checkOrderRefs(tx *gorm.DB, order *models.Order) error {
	if order.TableID != nil {
		if err := requireRef(tx, &models.Table{}, "order", "table_id", *order.TableID); err != nil {
			return err
		}
	}
	if order.EmployeeID != nil {
		if err := requireRef(tx, &models.Employee{}, "order", "employee_id", *order.EmployeeID); err != nil {
			return err
		}
	}
	return nil
}

// updateTotal locks the order row, re-reads every line item of the order and
// stores the sum of their subtotals.
func updateTotal(tx *gorm.DB, orderID uint) (*models.Order, error) {
	order, err := findByID[models.Order](lockForUpdate(tx), "order", orderID)
	if err != nil {
		return nil, err
	}

	var items []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items of order %d: %w", orderID, err)
	}

	total := models.SumSubtotals(items)
	if total.GreaterThan(models.MaxMoney) {
		return nil, &models.ValidationError{Entity: "order", Field: "total", Rule: "lte=99999999.99", Value: total}
	}

	if err := tx.Model(order).Update("total", total).Error; err != nil {
		return nil, fmt.Errorf("store total of order %d: %w", orderID, err)
	}
	if err := journal(tx, entityOrders, orderID, models.ActionUpdate); err != nil {
		return nil, err
	}

	order.Total = total
	order.Items = items

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": orderID,
		"items":    len(items),
		"total":    total.StringFixed(models.MoneyPlaces),
	}).Debug("Order total recomputed")
	return order, nil
}
