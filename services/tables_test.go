package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yeremiapane/restaurant-ledger/models"
)

func TestCreateTableDefaultsAndUniqueNumber(t *testing.T) {
	l, _ := setupTestLedger(t)
	table := seedTable(t, l, 3)
	assert.Equal(t, models.TableAvailable, table.Status)

	err := l.CreateTable(&models.Table{Number: 3, Capacity: 2, Location: "Terrace"})
	var dup *models.UniqueConstraintViolation
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []string{"number"}, dup.Fields)

	got, err := l.GetTableByNumber(3)
	require.NoError(t, err)
	assert.Equal(t, table.ID, got.ID)

	_, err = l.GetTableByNumber(9)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCreateTableReservableDefault(t *testing.T) {
	l, _ := setupTestLedger(t)
	defaulted := seedTable(t, l, 9)
	closed := &models.Table{Number: 10, Capacity: 2, Location: "Bar", Reservable: ptrBool(false)}
	require.NoError(t, l.CreateTable(closed))

	got, err := l.GetTable(defaulted.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Reservable)
	assert.True(t, *got.Reservable)

	got, err = l.GetTable(closed.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Reservable)
	assert.False(t, *got.Reservable)
}

func TestUpdateTableNumberClash(t *testing.T) {
	l, _ := setupTestLedger(t)
	seedTable(t, l, 1)
	second := seedTable(t, l, 2)

	second.Number = 1
	err := l.UpdateTable(second)
	var dup *models.UniqueConstraintViolation
	require.True(t, errors.As(err, &dup))

	second.Number = 2
	second.Status = models.TableMaintenance
	require.NoError(t, l.UpdateTable(second))

	got, err := l.GetTable(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableMaintenance, got.Status)
}

func TestCreateTableValidation(t *testing.T) {
	l, _ := setupTestLedger(t)

	err := l.CreateTable(&models.Table{Number: 0, Capacity: 2, Location: "Bar"})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "number", verr.Field)

	err = l.CreateTable(&models.Table{Number: 4, Capacity: 2, Location: "Bar", Status: "broken"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Field)
}

func TestDeleteTableNullsOrdersAndDropsReservations(t *testing.T) {
	l, _ := setupTestLedger(t)
	table := seedTable(t, l, 3)
	customer := seedCustomer(t, l, "luis@example.com")
	order := seedOrder(t, l, table, nil)
	require.NoError(t, l.CreateReservation(&models.Reservation{
		CustomerID: customer.ID,
		TableID:    table.ID,
		Date:       date(2024, time.January, 1),
		Time:       datatypes.NewTime(19, 0, 0, 0),
		PartySize:  2,
	}))

	require.NoError(t, l.DeleteTable(table.ID))

	got, err := l.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TableID)

	reservations, err := l.ListReservationsByCustomer(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, reservations)

	assert.True(t, errors.Is(l.DeleteTable(table.ID), models.ErrNotFound))
}
