package models

// Offer is an executor's bid to fulfill an order.
type Offer struct {
	ID         int `json:"id" gorm:"primaryKey;autoIncrement:false"`
	OrderID    int `json:"order_id" gorm:"not null;index"`
	ExecutorID int `json:"executor_id" gorm:"not null;index"`
}

// PrimaryKey returns the caller-assigned offer id.
func (o Offer) PrimaryKey() int { return o.ID }

// ResourceName returns the singular name used in messages and event routing keys.
func (Offer) ResourceName() string { return "offer" }
