package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

// SaveOrderItem creates the item when its ID is zero and updates it otherwise.
// The subtotal is always computed here and the parent order total recomputed
// in the same transaction.
func (l *Ledger) SaveOrderItem(item *models.OrderItem) error {
	err := restoreOnError(item, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			return saveOrderItem(tx, item)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"order_id": item.OrderID,
		"dish_id":  item.DishID,
		"subtotal": item.Subtotal.StringFixed(models.MoneyPlaces),
	}).Info("Order item saved")
	return nil
}

// AddDishToOrder adds a line item priced at the dish's current price.
func (l *Ledger) AddDishToOrder(orderID, dishID uint, quantity int, discount decimal.Decimal, notes *string) (*models.OrderItem, error) {
	item := &models.OrderItem{
		OrderID:  orderID,
		DishID:   dishID,
		Quantity: quantity,
		Discount: discount,
		Notes:    notes,
	}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		dish, err := findByID[models.Dish](tx, "dish", dishID)
		if errors.Is(err, models.ErrNotFound) {
			return &models.ReferentialIntegrityError{Entity: "order_item", Field: "dish_id", RefID: dishID}
		}
		if err != nil {
			return err
		}
		item.UnitPrice = dish.Price
		return saveOrderItem(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (l *Ledger) GetOrderItem(id uint) (*models.OrderItem, error) {
	return findByID[models.OrderItem](l.db, "order item", id)
}

// ListOrderItems returns the line items of an order in insertion order.
func (l *Ledger) ListOrderItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := findByID[models.Order](l.db, "order", orderID); err != nil {
		return nil, err
	}
	var items []models.OrderItem
	if err := l.db.Preload("Dish").Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items of order %d: %w", orderID, err)
	}
	return items, nil
}

// DeleteOrderItem removes one line item and recomputes its order's total.
func (l *Ledger) DeleteOrderItem(id uint) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		item, err := findByID[models.OrderItem](tx, "order item", id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.OrderItem{}, id).Error; err != nil {
			return fmt.Errorf("delete order item %d: %w", id, err)
		}
		if err := journal(tx, entityOrderItems, id, models.ActionDelete); err != nil {
			return err
		}
		_, err = updateTotal(tx, item.OrderID)
		return err
	})
}

func saveOrderItem(tx *gorm.DB, item *models.OrderItem) error {
	// the caller's subtotal is never trusted
	item.Subtotal = decimal.Zero
	item.UnitPrice = models.RoundMoney(item.UnitPrice)
	item.Discount = models.RoundMoney(item.Discount)
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ComputeSubtotal().GreaterThan(models.MaxMoney) {
		return &models.ValidationError{Entity: "order_item", Field: "subtotal", Rule: "lte=99999999.99", Value: item.Subtotal}
	}

	if err := requireRef(tx, &models.Order{}, "order_item", "order_id", item.OrderID); err != nil {
		return err
	}
	if err := requireRef(tx, &models.Dish{}, "order_item", "dish_id", item.DishID); err != nil {
		return err
	}

	var previousOrderID uint
	if item.ID == 0 {
		if err := create(tx, item); err != nil {
			return translate(fmt.Errorf("create order item: %w", err), "order_item")
		}
		if err := journal(tx, entityOrderItems, item.ID, models.ActionInsert); err != nil {
			return err
		}
	} else {
		existing, err := findByID[models.OrderItem](tx, "order item", item.ID)
		if err != nil {
			return err
		}
		previousOrderID = existing.OrderID
		if err := update(tx, item); err != nil {
			return translate(fmt.Errorf("update order item %d: %w", item.ID, err), "order_item")
		}
		if err := journal(tx, entityOrderItems, item.ID, models.ActionUpdate); err != nil {
			return err
		}
	}

	if _, err := updateTotal(tx, item.OrderID); err != nil {
		return err
	}
	// an item moved between orders leaves the old order to recompute too
	if previousOrderID != 0 && previousOrderID != item.OrderID {
		if _, err := updateTotal(tx, previousOrderID); err != nil {
			return err
		}
	}
	return nil
}
