package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPending   ReservationStatus = "pending"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
	ReservationNoShow    ReservationStatus = "no_show"
)

var reservationStatusLabels = map[ReservationStatus]string{
	ReservationConfirmed: "Confirmed",
	ReservationPending:   "Pending",
	ReservationCancelled: "Cancelled",
	ReservationCompleted: "Completed",
	ReservationNoShow:    "No Show",
}

func (s ReservationStatus) Valid() bool {
	_, ok := reservationStatusLabels[s]
	return ok
}

func (s ReservationStatus) Label() string {
	return reservationStatusLabels[s]
}

// Reservation books a table for a customer. (TableID, Date, Time) is unique.
type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	CustomerID uint              `gorm:"not null;index" json:"customer_id" validate:"required"`
	Customer   *Customer         `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer,omitempty" validate:"-"`
	TableID    uint              `gorm:"not null;uniqueIndex:idx_reservation_slot,priority:1" json:"table_id" validate:"required"`
	Table      *Table            `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table,omitempty" validate:"-"`
	Date       datatypes.Date    `gorm:"column:reservation_date;not null;uniqueIndex:idx_reservation_slot,priority:2" json:"date"`
	Time       datatypes.Time    `gorm:"column:reservation_time;not null;uniqueIndex:idx_reservation_slot,priority:3" json:"time"`
	PartySize  int               `gorm:"not null" json:"party_size" validate:"gte=1"`
	Status     ReservationStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status" validate:"enum"`
	Comments   *string           `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt  time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"not null" json:"updated_at"`
}

func (r *Reservation) ApplyDefaults() {
	if r.Status == "" {
		r.Status = ReservationPending
	}
}

func (r *Reservation) Validate() error {
	if time.Time(r.Date).IsZero() {
		return &ValidationError{Entity: "reservation", Field: "date", Rule: "required", Value: r.Date}
	}
	return validateStruct("reservation", r)
}

func (r Reservation) String() string {
	who := fmt.Sprintf("customer #%d", r.CustomerID)
	if r.Customer != nil {
		who = r.Customer.FirstName
	}
	return fmt.Sprintf("Reservation #%d - %s - %s", r.ID, who, time.Time(r.Date).Format("2006-01-02"))
}
