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

func TestCustomerRegistrationDateSetOnce(t *testing.T) {
	l, _ := setupTestLedger(t)
	c := seedCustomer(t, l, "luis@example.com")

	stamped := time.Time(c.RegisteredOn)
	assert.False(t, stamped.IsZero())
	assert.Equal(t, time.Now().Format("2006-01-02"), stamped.Format("2006-01-02"))

	c.RegisteredOn = date(1999, time.December, 31)
	c.Phone = "555-0000"
	require.NoError(t, l.UpdateCustomer(c))
	assert.Equal(t, stamped.Format("2006-01-02"), time.Time(c.RegisteredOn).Format("2006-01-02"))

	got, err := l.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0000", got.Phone)
	assert.Equal(t, stamped.Format("2006-01-02"), time.Time(got.RegisteredOn).Format("2006-01-02"))
}

func TestCreateCustomerValidation(t *testing.T) {
	l, _ := setupTestLedger(t)

	err := l.CreateCustomer(&models.Customer{FirstName: "A", LastName: "B", Email: "a@b.io", LoyaltyPoints: -5})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "loyalty_points", verr.Field)
}

func TestAddLoyaltyPoints(t *testing.T) {
	l, _ := setupTestLedger(t)
	c := seedCustomer(t, l, "luis@example.com")

	got, err := l.AddLoyaltyPoints(c.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, got.LoyaltyPoints)

	got, err = l.AddLoyaltyPoints(c.ID, -15)
	require.NoError(t, err)
	assert.Equal(t, 25, got.LoyaltyPoints)

	_, err = l.AddLoyaltyPoints(c.ID, -26)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "loyalty_points", verr.Field)

	stored, err := l.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.LoyaltyPoints)

	_, err = l.AddLoyaltyPoints(999, 1)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestDeleteCustomerDropsReservations(t *testing.T) {
	l, _ := setupTestLedger(t)
	c := seedCustomer(t, l, "luis@example.com")
	other := seedCustomer(t, l, "eva@example.com")
	table := seedTable(t, l, 3)
	for i, who := range []*models.Customer{c, c, other} {
		require.NoError(t, l.CreateReservation(&models.Reservation{
			CustomerID: who.ID,
			TableID:    table.ID,
			Date:       date(2024, time.January, 1),
			Time:       datatypes.NewTime(18+i, 0, 0, 0),
			PartySize:  2,
		}))
	}

	require.NoError(t, l.DeleteCustomer(c.ID))

	left, err := l.ListReservationsByTable(table.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].CustomerID)
}
