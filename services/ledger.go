package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/restaurant-ledger/models"
)

// Journal entity names, one per table.
const (
	entityDishes       = "dishes"
	entityTables       = "tables"
	entityEmployees    = "employees"
	entityCustomers    = "customers"
	entityOrders       = "orders"
	entityOrderItems   = "order_items"
	entityReservations = "reservations"
)

// Ledger owns every write to the restaurant schema. Each public write runs in
// one transaction and appends to the change journal inside it.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// journal records a write in the same transaction as the write itself.
func journal(tx *gorm.DB, entity string, id uint, action models.ChangeAction) error {
	change := models.Change{Entity: entity, RecordID: id, Action: action}
	if err := tx.Create(&change).Error; err != nil {
		return fmt.Errorf("journal %s %d: %w", entity, id, err)
	}
	return nil
}

func findByID[T any](tx *gorm.DB, entity string, id uint) (*T, error) {
	var rec T
	if err := tx.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: entity, ID: id}
		}
		return nil, fmt.Errorf("get %s %d: %w", entity, id, err)
	}
	return &rec, nil
}

// requireRef fails with a ReferentialIntegrityError when no row of model has id.
func requireRef(tx *gorm.DB, model interface{}, entity, field string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check %s.%s: %w", entity, field, err)
	}
	if n == 0 {
		return &models.ReferentialIntegrityError{Entity: entity, Field: field, RefID: id}
	}
	return nil
}

// requireUnique fails with a UniqueConstraintViolation when another row matches query.
func requireUnique(tx *gorm.DB, model interface{}, id uint, entity string, fields []string, query string, args ...interface{}) error {
	var n int64
	if err := tx.Model(model).Where(query, args...).Where("id <> ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check unique %s: %w", entity, err)
	}
	if n > 0 {
		return &models.UniqueConstraintViolation{Entity: entity, Fields: fields}
	}
	return nil
}

func create(tx *gorm.DB, value interface{}) error {
	return tx.Omit(clause.Associations).Create(value).Error
}

// update writes every column of value, zero values included, except the
// associations, created_at and omit.
func update(tx *gorm.DB, value interface{}, omit ...string) error {
	omits := append([]string{clause.Associations, "created_at"}, omit...)
	return tx.Select("*").Omit(omits...).Updates(value).Error
}

// translate maps driver constraint errors that slipped past the pre-checks.
func translate(err error, entity string, fields ...string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &models.UniqueConstraintViolation{Entity: entity, Fields: fields}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &models.ReferentialIntegrityError{Entity: entity}
	}
	return err
}

// restoreOnError runs write and puts v back as it was when write fails, so a
// rolled-back insert does not leave its generated ID behind.
func restoreOnError[T any](v *T, write func() error) error {
	saved := *v
	if err := write(); err != nil {
		*v = saved
		return err
	}
	return nil
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect supports it.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// dateOnly strips the clock and zone so equal calendar days compare equal in SQL.
func dateOnly(d datatypes.Date) datatypes.Date {
	y, m, day := time.Time(d).Date()
	return datatypes.Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

func today() datatypes.Date {
	return dateOnly(datatypes.Date(time.Now()))
}
