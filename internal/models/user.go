package models

// User represents a marketplace participant: a customer posting orders or an executor fulfilling them.
type User struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null"`
	Age       int    `json:"age" gorm:"not null"`
	Email     string `json:"email" gorm:"type:varchar(255);not null"`
	Role      string `json:"role" gorm:"type:varchar(50);not null"` // e.g., "customer", "executor"
	Phone     string `json:"phone" gorm:"type:varchar(50);not null"`
}

// PrimaryKey returns the caller-assigned user id.
func (u User) PrimaryKey() int { return u.ID }

// ResourceName returns the singular name used in messages and event routing keys.
func (User) ResourceName() string { return "user" }
