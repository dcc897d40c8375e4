package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

// CreateCustomer stamps the registration date; it is never rewritten afterwards.
func (l *Ledger) CreateCustomer(customer *models.Customer) error {
	customer.RegisteredOn = today()
	if err := customer.Validate(); err != nil {
		return err
	}
	err := restoreOnError(customer, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			if err := create(tx, customer); err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
			return journal(tx, entityCustomers, customer.ID, models.ActionInsert)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer)
	return nil
}

func (l *Ledger) GetCustomer(id uint) (*models.Customer, error) {
	return findByID[models.Customer](l.db, "customer", id)
}

func (l *Ledger) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := l.db.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (l *Ledger) UpdateCustomer(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findByID[models.Customer](tx, "customer", customer.ID)
		if err != nil {
			return err
		}
		if err := update(tx, customer, "registered_on"); err != nil {
			return fmt.Errorf("update customer %d: %w", customer.ID, err)
		}
		customer.RegisteredOn = existing.RegisteredOn
		return journal(tx, entityCustomers, customer.ID, models.ActionUpdate)
	})
}

// AddLoyaltyPoints adjusts the balance by delta, which may be negative as long
// as the balance stays at or above zero.
func (l *Ledger) AddLoyaltyPoints(customerID uint, delta int) (*models.Customer, error) {
	var customer *models.Customer
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var err error
		customer, err = findByID[models.Customer](lockForUpdate(tx), "customer", customerID)
		if err != nil {
			return err
		}
		balance := customer.LoyaltyPoints + delta
		if balance < 0 {
			return &models.ValidationError{Entity: "customer", Field: "loyalty_points", Rule: "gte=0", Value: balance}
		}
		if err := tx.Model(customer).Update("loyalty_points", balance).Error; err != nil {
			return fmt.Errorf("update loyalty points of customer %d: %w", customerID, err)
		}
		customer.LoyaltyPoints = balance
		return journal(tx, entityCustomers, customerID, models.ActionUpdate)
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"customer_id": customerID,
		"delta":       delta,
		"balance":     customer.LoyaltyPoints,
	}).Info("Loyalty points updated")
	return customer, nil
}

// DeleteCustomer deletes the customer and all of their reservations.
func (l *Ledger) DeleteCustomer(id uint) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Customer](tx, "customer", id); err != nil {
			return err
		}
		if err := deleteReservations(tx, "customer_id", id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
			return fmt.Errorf("delete customer %d: %w", id, err)
		}
		return journal(tx, entityCustomers, id, models.ActionDelete)
	})
}
