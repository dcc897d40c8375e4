package models

import (
	"fmt"
	"time"
)

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableReserved    TableStatus = "reserved"
	TableMaintenance TableStatus = "maintenance"
)

var tableStatusLabels = map[TableStatus]string{
	TableAvailable:   "Available",
	TableOccupied:    "Occupied",
	TableReserved:    "Reserved",
	TableMaintenance: "Under Maintenance",
}

func (s TableStatus) Valid() bool {
	_, ok := tableStatusLabels[s]
	return ok
}

func (s TableStatus) Label() string {
	return tableStatusLabels[s]
}

type Table struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Number     int         `gorm:"not null;uniqueIndex:idx_table_number" json:"number" validate:"gte=1"`
	Capacity   int         `gorm:"not null" json:"capacity" validate:"gte=1"`
	Status     TableStatus `gorm:"type:varchar(50);not null;default:'available'" json:"status" validate:"enum"`
	Location   string      `gorm:"type:varchar(100);not null" json:"location" validate:"max=100"` // terrace, indoor, window...
	Reservable *bool       `gorm:"not null;default:true" json:"reservable"`
	Notes      *string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}

// ApplyDefaults fills the unset status and reservable flag with their column defaults.
func (t *Table) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TableAvailable
	}
	if t.Reservable == nil {
		reservable := true
		t.Reservable = &reservable
	}
}

func (t *Table) Validate() error {
	return validateStruct("table", t)
}

func (t Table) String() string {
	return fmt.Sprintf("Table %d - %s (Cap: %d)", t.Number, t.Location, t.Capacity)
}
