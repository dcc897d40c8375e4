package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/restaurant-ledger/utils"
)

type DishCategory string

const (
	CategoryStarter DishCategory = "starter"
	CategoryMain    DishCategory = "main"
	CategoryDessert DishCategory = "dessert"
	CategoryDrink   DishCategory = "drink"
	CategorySalad   DishCategory = "salad"
	CategorySoup    DishCategory = "soup"
)

var dishCategoryLabels = map[DishCategory]string{
	CategoryStarter: "Starter",
	CategoryMain:    "Main Course",
	CategoryDessert: "Dessert",
	CategoryDrink:   "Drink",
	CategorySalad:   "Salad",
	CategorySoup:    "Soup",
}

func (c DishCategory) Valid() bool {
	_, ok := dishCategoryLabels[c]
	return ok
}

func (c DishCategory) Label() string {
	return dishCategoryLabels[c]
}

// Dish is a menu item.
type Dish struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0,lte=99999999.99"`
	Category        DishCategory    `gorm:"type:varchar(50);not null;index" json:"category" validate:"enum"`
	PrepTimeMinutes int             `gorm:"not null" json:"prep_time_minutes" validate:"gte=0"`
	Ingredients     string          `gorm:"type:text;not null" json:"ingredients"`
	Available       *bool           `gorm:"not null;default:true" json:"available"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// ApplyDefaults marks an unset dish available and reduces the price to the
// column precision.
func (d *Dish) ApplyDefaults() {
	if d.Available == nil {
		available := true
		d.Available = &available
	}
	d.Price = RoundMoney(d.Price)
}

func (d *Dish) Validate() error {
	return validateStruct("dish", d)
}

func (d Dish) String() string {
	return fmt.Sprintf("%s - %s", d.Name, utils.FormatMoney(d.Price))
}
