package models

import "time"

// Cleaner is the slice of the cleaner record this core reads: identity,
// tenure and availability. Account data lives elsewhere.
type Cleaner struct {
	ID        string     `bson:"id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	HireDate  *time.Time `bson:"hireDate,omitempty" json:"hireDate,omitempty"`
	IsActive  bool       `bson:"isActive" json:"isActive"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
