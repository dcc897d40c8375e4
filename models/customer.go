package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	FirstName          string         `gorm:"type:varchar(100);not null" json:"first_name" validate:"required,max=100"`
	LastName           string         `gorm:"type:varchar(100);not null" json:"last_name" validate:"required,max=100"`
	Phone              string         `gorm:"type:varchar(20);not null" json:"phone" validate:"max=20"`
	Email              string         `gorm:"type:varchar(100);not null" json:"email" validate:"required,email,max=100"`
	RegisteredOn       datatypes.Date `gorm:"<-:create;not null" json:"registered_on"`
	DietaryPreferences *string        `gorm:"type:text" json:"dietary_preferences,omitempty"`
	LoyaltyPoints      int            `gorm:"not null;default:0" json:"loyalty_points" validate:"gte=0"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updated_at"`
}

func (c *Customer) Validate() error {
	return validateStruct("customer", c)
}

func (c Customer) String() string {
	return fmt.Sprintf("%s %s - %s", c.FirstName, c.LastName, c.Email)
}
