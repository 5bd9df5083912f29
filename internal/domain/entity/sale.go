package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/enum"
)

// Sale is a committed point-of-sale transaction. It is immutable once
// created; corrections happen through new transactions, never edits.
type Sale struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	Total          float64            `gorm:"type:numeric(12,2);not null" json:"total"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	AmountTendered float64            `gorm:"type:numeric(12,2);not null" json:"amount_tendered"`
	Change         float64            `gorm:"type:numeric(12,2);not null" json:"change"`
	CreatedAt      time.Time          `json:"created_at"`

	// Relationships
	Items     []SaleItem     `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Discounts []SaleDiscount `gorm:"foreignKey:SaleID" json:"discounts,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a committed sale, priced at the unit price that
// applied at sale time. Existence of a SaleItem forbids deleting the
// referenced product.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"` // snapshot; later renames do not touch past receipts
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	LineTotal   float64   `gorm:"type:numeric(12,2);not null" json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleDiscount is the persisted per-category discount breakdown that applied
// at checkout time. Historical receipts render from these rows so a later
// rule change never rewrites a past receipt.
type SaleDiscount struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID           uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	Category         string    `gorm:"size:255;not null" json:"category"`
	TotalQuantity    int       `gorm:"not null" json:"total_quantity"`
	BulkSets         int       `gorm:"not null" json:"bulk_sets"`
	DiscountQuantity int       `gorm:"not null" json:"discount_quantity"`
	DiscountPrice    float64   `gorm:"type:numeric(12,2);not null" json:"discount_price"`
	Savings          float64   `gorm:"type:numeric(12,2);not null" json:"savings"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale discount
func (sd *SaleDiscount) BeforeCreate(tx *gorm.DB) error {
	if sd.ID == uuid.Nil {
		sd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleDiscount model
func (SaleDiscount) TableName() string {
	return "sale_discounts"
}
