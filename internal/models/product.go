package models

import "time"

// DefaultCurrency is applied to products created without a currency.
const DefaultCurrency = "INR"

// Artisan describes the maker of a product.
type Artisan struct {
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Origin string `json:"origin,omitempty" bson:"origin,omitempty"`
	About  string `json:"about,omitempty" bson:"about,omitempty"`
}

// Product represents a craft listed in the catalog.
type Product struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Title       string    `json:"title" gorm:"type:varchar(200)" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" gorm:"index" bson:"price"`
	Currency    string    `json:"currency" gorm:"type:varchar(3);default:INR" bson:"currency"`
	Images      []string  `json:"images" gorm:"serializer:json" bson:"images"`
	Material    string    `json:"material,omitempty" gorm:"index" bson:"material,omitempty"`
	Category    string    `json:"category,omitempty" gorm:"index" bson:"category,omitempty"`
	Artisan     Artisan   `json:"artisan" gorm:"embedded;embeddedPrefix:artisan_" bson:"artisan"`
	Stock       *int      `json:"stock,omitempty" bson:"stock,omitempty"`
	Tags        []string  `json:"tags" gorm:"serializer:json" bson:"tags"`
	Telangana   bool      `json:"telangana" gorm:"index;not null;default:false" bson:"telangana"`
	CreatedBy   string    `json:"createdBy,omitempty" gorm:"type:varchar(36)" bson:"createdBy,omitempty"` // weak reference to a User
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
