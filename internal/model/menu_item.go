package model

import "time"

// Category classifies a menu item. The storage layer enforces the same set
// through a CHECK constraint.
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryDrink      Category = "Drink"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

// Availability tells staff whether a menu item can currently be ordered.
type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
)

func (a Availability) Valid() bool {
	return a == AvailabilityInStock || a == AvailabilityOutOfStock
}

// MenuItem is the persisted row of the menu_items table.
// Price holds the exact NUMERIC(10,2) text produced by the money codec and is
// never handled as a float here.
type MenuItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Description  *string
	Price        string       `gorm:"type:numeric(10,2);not null"`
	Category     Category     `gorm:"type:text;not null"`
	Availability Availability `gorm:"type:text;not null;default:'In Stock'"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

func (MenuItem) TableName() string { return "menu_items" }
