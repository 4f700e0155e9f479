package models

// Record is implemented by every persisted resource type.
type Record interface {
	User | Order | Offer
	PrimaryKey() int
	ResourceName() string
}
