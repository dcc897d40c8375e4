package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one dish line within an order.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id" validate:"required"`
	Order     *Order          `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" validate:"-"`
	DishID    uint            `gorm:"not null;index" json:"dish_id" validate:"required"`
	Dish      *Dish           `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"dish,omitempty" validate:"-"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price" validate:"gte=0,lte=99999999.99"`
	Notes     *string         `gorm:"type:text" json:"notes,omitempty"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal" validate:"gte=0,lte=99999999.99"`
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount" validate:"gte=0,lte=100"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// ComputeSubtotal overwrites Subtotal from UnitPrice, Discount and Quantity.
func (i *OrderItem) ComputeSubtotal() decimal.Decimal {
	i.Subtotal = LineSubtotal(i.UnitPrice, i.Discount, i.Quantity)
	return i.Subtotal
}

func (i *OrderItem) Validate() error {
	return validateStruct("order_item", i)
}

func (i OrderItem) String() string {
	return fmt.Sprintf("Item #%d - Order #%d", i.ID, i.OrderID)
}
