package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderInPrep    OrderStatus = "in_prep"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:   "Pending",
	OrderConfirmed: "Confirmed",
	OrderInPrep:    "In Preparation",
	OrderReady:     "Ready to Serve",
	OrderDelivered: "Delivered",
	OrderCancelled: "Cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	return orderStatusLabels[s]
}

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
)

var orderTypeLabels = map[OrderType]string{
	OrderDineIn:   "Dine In",
	OrderDelivery: "Delivery",
	OrderPickup:   "Takeaway",
}

func (t OrderType) Valid() bool {
	_, ok := orderTypeLabels[t]
	return ok
}

func (t OrderType) Label() string {
	return orderTypeLabels[t]
}

// Order groups line items. Total is derived from Items and only written by the ledger.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `gorm:"<-:create;not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
	TableID    *uint           `gorm:"index" json:"table_id,omitempty"`
	Table      *Table          `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty" validate:"-"`
	EmployeeID *uint           `gorm:"index" json:"employee_id,omitempty"`
	Employee   *Employee       `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"employee,omitempty" validate:"-"`
	Status     OrderStatus     `gorm:"type:varchar(50);not null;default:'pending'" json:"status" validate:"enum"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total" validate:"gte=0,lte=99999999.99"`
	Type       OrderType       `gorm:"column:order_type;type:varchar(50);not null;default:'dine_in'" json:"order_type" validate:"enum"`
	OrderedAt  datatypes.Time  `gorm:"<-:create;not null" json:"ordered_at"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderPending
	}
	if o.Type == "" {
		o.Type = OrderDineIn
	}
}

func (o *Order) Validate() error {
	return validateStruct("order", o)
}

func (o Order) String() string {
	return fmt.Sprintf("Order #%d - %s", o.ID, o.CreatedAt.Format("02/01/2006 15:04"))
}
