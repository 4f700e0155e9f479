package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Order represents a work order posted by a customer.
type Order struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"not null"`
	StartDate   time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate     time.Time `json:"end_date" gorm:"type:date;not null"`
	Address     string    `json:"address" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	CustomerID  int       `json:"customer_id" gorm:"index"` // references a User
	ExecutorID  int       `json:"executor_id" gorm:"index"` // references a User
}

// PrimaryKey returns the caller-assigned order id.
func (o Order) PrimaryKey() int { return o.ID }

// ResourceName returns the singular name used in messages and event routing keys.
func (Order) ResourceName() string { return "order" }

// orderJSON is the public representation, with month/day/year dates.
type orderJSON struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	CustomerID  int     `json:"customer_id"`
	ExecutorID  int     `json:"executor_id"`
}

// MarshalJSON emits start_date and end_date as month/day/year strings.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		StartDate:   FormatDate(o.StartDate),
		EndDate:     FormatDate(o.EndDate),
		Address:     o.Address,
		Price:       o.Price,
		CustomerID:  o.CustomerID,
		ExecutorID:  o.ExecutorID,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw orderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseDate(raw.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(raw.EndDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	*o = Order{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		StartDate:   start,
		EndDate:     end,
		Address:     raw.Address,
		Price:       raw.Price,
		CustomerID:  raw.CustomerID,
		ExecutorID:  raw.ExecutorID,
	}
	return nil
}
