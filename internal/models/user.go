package models

import "time"

// UserRole is the closed set of roles a user may hold. The role is stored
// but not enforced by any endpoint.
type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Address is a labelled postal address of a user.
type Address struct {
	Label      string `json:"label" bson:"label"`
	Line       string `json:"addressLine" bson:"addressLine"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"pincode" bson:"pincode"`
}

// User represents a buyer, seller or administrator of the store.
type User struct {
	ID           string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" bson:"email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)" bson:"passwordHash"`
	Role         UserRole  `json:"role" gorm:"type:varchar(16);default:buyer" bson:"role"`
	Addresses    []Address `json:"address" gorm:"serializer:json" bson:"address"`
	Wishlist     []string  `json:"wishlist" gorm:"serializer:json" bson:"wishlist"` // weak references to Products
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
