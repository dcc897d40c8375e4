package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/config"
	"github.com/yeremiapane/restaurant-ledger/database"
	"github.com/yeremiapane/restaurant-ledger/models"
)

// setupTestLedger opens a private in-memory SQLite database with the full schema.
func setupTestLedger(t *testing.T) (*Ledger, *gorm.DB) {
	t.Helper()
	db, err := config.InitDB(&config.Config{
		DBDriver:   "sqlite",
		DBSource:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewLedger(db), db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptrBool(b bool) *bool {
	return &b
}

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func seedDish(t *testing.T, l *Ledger, name, price string) *models.Dish {
	t.Helper()
	dish := &models.Dish{
		Name:            name,
		Description:     name + " of the day",
		Price:           dec(price),
		Category:        models.CategoryMain,
		PrepTimeMinutes: 15,
		Ingredients:     "secret",
		Available:       ptrBool(true),
	}
	require.NoError(t, l.CreateDish(dish))
	return dish
}

func seedTable(t *testing.T, l *Ledger, number int) *models.Table {
	t.Helper()
	table := &models.Table{Number: number, Capacity: 4, Location: "Interior"}
	require.NoError(t, l.CreateTable(table))
	return table
}

func seedEmployee(t *testing.T, l *Ledger, nationalID string) *models.Employee {
	t.Helper()
	emp := &models.Employee{
		FirstName:  "Ana",
		LastName:   "Ruiz",
		Role:       models.RoleWaiter,
		Salary:     dec("1800"),
		HireDate:   date(2022, time.March, 1),
		Phone:      "555-0101",
		Email:      "ana@example.com",
		NationalID: nationalID,
	}
	require.NoError(t, l.CreateEmployee(emp))
	return emp
}

func seedCustomer(t *testing.T, l *Ledger, email string) *models.Customer {
	t.Helper()
	c := &models.Customer{FirstName: "Luis", LastName: "Mora", Phone: "555-0199", Email: email}
	require.NoError(t, l.CreateCustomer(c))
	return c
}

func seedOrder(t *testing.T, l *Ledger, table *models.Table, emp *models.Employee) *models.Order {
	t.Helper()
	order := &models.Order{}
	if table != nil {
		order.TableID = &table.ID
	}
	if emp != nil {
		order.EmployeeID = &emp.ID
	}
	require.NoError(t, l.CreateOrder(order))
	return order
}

func addItem(t *testing.T, l *Ledger, orderID, dishID uint, price string, qty int, discount string) *models.OrderItem {
	t.Helper()
	item := &models.OrderItem{
		OrderID:   orderID,
		DishID:    dishID,
		Quantity:  qty,
		UnitPrice: dec(price),
		Discount:  dec(discount),
	}
	require.NoError(t, l.SaveOrderItem(item))
	return item
}

func orderTotal(t *testing.T, l *Ledger, orderID uint) string {
	t.Helper()
	order, err := l.GetOrder(orderID)
	require.NoError(t, err)
	return order.Total.StringFixed(models.MoneyPlaces)
}
