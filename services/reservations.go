package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ledger/models"
	"github.com/yeremiapane/restaurant-ledger/utils"
)

var reservationSlotKey = []string{"table_id", "reservation_date", "reservation_time"}

// CreateReservation books a table slot. A second booking of the same table,
// date and time fails with a UniqueConstraintViolation.
func (l *Ledger) CreateReservation(r *models.Reservation) error {
	r.ApplyDefaults()
	r.Date = dateOnly(r.Date)
	if err := r.Validate(); err != nil {
		return err
	}
	err := restoreOnError(r, func() error {
		return l.db.Transaction(func(tx *gorm.DB) error {
			if err := checkReservation(tx, r); err != nil {
				return err
			}
			if err := create(tx, r); err != nil {
				return translate(err, "reservation", reservationSlotKey...)
			}
			return journal(tx, entityReservations, r.ID, models.ActionInsert)
		})
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Reservation #%d booked: table %d on %s at %s",
		r.ID, r.TableID, time.Time(r.Date).Format("2006-01-02"), r.Time)
	return nil
}

func (l *Ledger) GetReservation(id uint) (*models.Reservation, error) {
	return findByID[models.Reservation](l.db.Preload("Customer").Preload("Table"), "reservation", id)
}

func (l *Ledger) ListReservationsByTable(tableID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := l.db.Where("table_id = ?", tableID).
		Order("reservation_date, reservation_time").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list reservations of table %d: %w", tableID, err)
	}
	return out, nil
}

func (l *Ledger) ListReservationsByCustomer(customerID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := l.db.Where("customer_id = ?", customerID).
		Order("reservation_date, reservation_time").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list reservations of customer %d: %w", customerID, err)
	}
	return out, nil
}

func (l *Ledger) UpdateReservation(r *models.Reservation) error {
	r.ApplyDefaults()
	r.Date = dateOnly(r.Date)
	if err := r.Validate(); err != nil {
		return err
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Reservation](tx, "reservation", r.ID); err != nil {
			return err
		}
		if err := checkReservation(tx, r); err != nil {
			return err
		}
		if err := update(tx, r); err != nil {
			return translate(fmt.Errorf("update reservation %d: %w", r.ID, err), "reservation", reservationSlotKey...)
		}
		return journal(tx, entityReservations, r.ID, models.ActionUpdate)
	})
}

func (l *Ledger) DeleteReservation(id uint) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Reservation](tx, "reservation", id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Reservation{}, id).Error; err != nil {
			return fmt.Errorf("delete reservation %d: %w", id, err)
		}
		return journal(tx, entityReservations, id, models.ActionDelete)
	})
}

func checkReservation(tx *gorm.DB, r *models.Reservation) error {
	if err := requireRef(tx, &models.Customer{}, "reservation", "customer_id", r.CustomerID); err != nil {
		return err
	}
	if err := requireRef(tx, &models.Table{}, "reservation", "table_id", r.TableID); err != nil {
		return err
	}
	return requireUnique(tx, &models.Reservation{}, r.ID, "reservation", reservationSlotKey,
		"table_id = ? AND reservation_date = ? AND reservation_time = ?", r.TableID, r.Date, r.Time)
}
