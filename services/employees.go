package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

var nationalIDKey = []string{"national_id"}

func (l *Ledger) CreateEmployee(emp *models.Employee) error {
	emp.HireDate = dateOnly(emp.HireDate)
	emp.Salary = models.RoundMoney(emp.Salary)
	if err := emp.Validate(); err != nil {
		return err
	}
	err := restoreOnError(emp, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			if err := requireUnique(tx, &models.Employee{}, 0, "employee", nationalIDKey, "national_id = ?", emp.NationalID); err != nil {
				return err
			}
			if err := create(tx, emp); err != nil {
				return translate(err, "employee", nationalIDKey...)
			}
			return journal(tx, entityEmployees, emp.ID, models.ActionInsert)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("New employee registered: %s", emp)
	return nil
}

func (l *Ledger) GetEmployee(id uint) (*models.Employee, error) {
	return findByID[models.Employee](l.db, "employee", id)
}

func (l *Ledger) ListEmployees() ([]models.Employee, error) {
	var staff []models.Employee
	if err := l.db.Order("id").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return staff, nil
}

func (l *Ledger) UpdateEmployee(emp *models.Employee) error {
	emp.HireDate = dateOnly(emp.HireDate)
	emp.Salary = models.RoundMoney(emp.Salary)
	if err := emp.Validate(); err != nil {
		return err
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Employee](tx, "employee", emp.ID); err != nil {
			return err
		}
		if err := requireUnique(tx, &models.Employee{}, emp.ID, "employee", nationalIDKey, "national_id = ?", emp.NationalID); err != nil {
			return err
		}
		if err := update(tx, emp); err != nil {
			return translate(fmt.Errorf("update employee %d: %w", emp.ID, err), "employee", nationalIDKey...)
		}
		return journal(tx, entityEmployees, emp.ID, models.ActionUpdate)
	})
}

// DeleteEmployee keeps the employee's orders and clears their employee reference.
func (l *Ledger) DeleteEmployee(id uint) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Employee](tx, "employee", id); err != nil {
			return err
		}
		if err := detachOrders(tx, "employee_id", id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Employee{}, id).Error; err != nil {
			return fmt.Errorf("delete employee %d: %w", id, err)
		}
		return journal(tx, entityEmployees, id, models.ActionDelete)
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Employee %d deleted", id)
	return nil
}
