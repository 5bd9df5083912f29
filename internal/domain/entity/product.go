package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the store catalog.
// Prices are decimal currency units stored in a numeric column.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"` // barcode / QR scan code
	UnitPrice     float64        `gorm:"type:numeric(12,2);not null;default:0" json:"unit_price"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	StockAlert    int            `gorm:"default:0" json:"stock_alert"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	ProductImage  *string        `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// CategoryName returns the preloaded category name, or "" when uncategorized.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// Category represents a product category carrying an optional bulk
// discount rule: DiscountQuantity units of the category sell together for
// a flat DiscountPrice. Either value at zero disables the rule.
type Category struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;unique;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	DiscountQuantity int            `gorm:"not null;default:0" json:"discount_quantity"`
	DiscountPrice    float64        `gorm:"type:numeric(12,2);not null;default:0" json:"discount_price"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// RuleActive reports whether the bulk discount rule is enabled.
// Both values must be strictly positive.
func (c *Category) RuleActive() bool {
	return c.DiscountQuantity > 0 && c.DiscountPrice > 0
}
