package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type EmployeeRole string

const (
	RoleManager   EmployeeRole = "manager"
	RoleChef      EmployeeRole = "chef"
	RoleWaiter    EmployeeRole = "waiter"
	RoleCashier   EmployeeRole = "cashier"
	RoleBartender EmployeeRole = "bartender"
	RoleCleaner   EmployeeRole = "cleaner"
)

var employeeRoleLabels = map[EmployeeRole]string{
	RoleManager:   "Manager",
	RoleChef:      "Chef",
	RoleWaiter:    "Waiter",
	RoleCashier:   "Cashier",
	RoleBartender: "Bartender",
	RoleCleaner:   "Cleaning",
}

func (r EmployeeRole) Valid() bool {
	_, ok := employeeRoleLabels[r]
	return ok
}

func (r EmployeeRole) Label() string {
	return employeeRoleLabels[r]
}

type Employee struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	FirstName  string          `gorm:"type:varchar(100);not null" json:"first_name" validate:"required,max=100"`
	LastName   string          `gorm:"type:varchar(100);not null" json:"last_name" validate:"required,max=100"`
	Role       EmployeeRole    `gorm:"type:varchar(50);not null" json:"role" validate:"enum"`
	Salary     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"salary" validate:"gte=0,lte=99999999.99"`
	HireDate   datatypes.Date  `gorm:"not null" json:"hire_date"`
	Phone      string          `gorm:"type:varchar(20);not null" json:"phone" validate:"max=20"`
	Email      string          `gorm:"type:varchar(100);not null" json:"email" validate:"required,email,max=100"`
	NationalID string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_employee_national_id" json:"national_id" validate:"required,max=20"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *Employee) Validate() error {
	if time.Time(e.HireDate).IsZero() {
		return &ValidationError{Entity: "employee", Field: "hire_date", Rule: "required", Value: e.HireDate}
	}
	return validateStruct("employee", e)
}

func (e Employee) String() string {
	return fmt.Sprintf("%s %s - %s", e.FirstName, e.LastName, e.Role.Label())
}
