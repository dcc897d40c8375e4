package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ledger/models"
)

func TestCreateEmployeeUniqueNationalID(t *testing.T) {
	l, _ := setupTestLedger(t)
	seedEmployee(t, l, "NID-001")

	dup := &models.Employee{
		FirstName:  "Marta",
		LastName:   "Soto",
		Role:       models.RoleChef,
		Salary:     dec("2500"),
		HireDate:   date(2023, time.June, 12),
		Email:      "marta@example.com",
		NationalID: "NID-001",
	}
	err := l.CreateEmployee(dup)
	var uerr *models.UniqueConstraintViolation
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, []string{"national_id"}, uerr.Fields)

	staff, err := l.ListEmployees()
	require.NoError(t, err)
	assert.Len(t, staff, 1)
}

func TestCreateEmployeeValidation(t *testing.T) {
	l, _ := setupTestLedger(t)

	cases := map[string]models.Employee{
		"role":      {FirstName: "A", LastName: "B", Role: "sommelier", Salary: dec("1"), HireDate: date(2023, time.May, 1), Email: "a@b.io", NationalID: "X1"},
		"salary":    {FirstName: "A", LastName: "B", Role: models.RoleCashier, Salary: dec("-1"), HireDate: date(2023, time.May, 1), Email: "a@b.io", NationalID: "X2"},
		"email":     {FirstName: "A", LastName: "B", Role: models.RoleCashier, Salary: dec("1"), HireDate: date(2023, time.May, 1), Email: "not-an-email", NationalID: "X3"},
		"hire_date": {FirstName: "A", LastName: "B", Role: models.RoleCashier, Salary: dec("1"), Email: "a@b.io", NationalID: "X4"},
	}
	for field, emp := range cases {
		emp := emp
		err := l.CreateEmployee(&emp)
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestUpdateEmployee(t *testing.T) {
	l, _ := setupTestLedger(t)
	emp := seedEmployee(t, l, "NID-001")
	other := seedEmployee(t, l, "NID-002")

	other.NationalID = "NID-001"
	var uerr *models.UniqueConstraintViolation
	require.True(t, errors.As(l.UpdateEmployee(other), &uerr))

	emp.Role = models.RoleManager
	require.NoError(t, l.UpdateEmployee(emp))
	got, err := l.GetEmployee(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)
	assert.Equal(t, "2022-03-01", time.Time(got.HireDate).Format("2006-01-02"))

	emp.Salary = dec("2100.555")
	require.NoError(t, l.UpdateEmployee(emp))
	got, err = l.GetEmployee(emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "2100.56", got.Salary.String())
}

func TestDeleteEmployeeNullsOrders(t *testing.T) {
	l, _ := setupTestLedger(t)
	emp := seedEmployee(t, l, "NID-001")
	table := seedTable(t, l, 5)
	order := seedOrder(t, l, table, emp)

	require.NoError(t, l.DeleteEmployee(emp.ID))

	got, err := l.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EmployeeID)
	require.NotNil(t, got.TableID)
	assert.Equal(t, table.ID, *got.TableID)

	_, err = l.GetEmployee(emp.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
