package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedCategory is the category path used when a raw category can't be mapped.
const UncategorizedCategory = "Uncategorized"

// CategorySeparator joins category path segments.
const CategorySeparator = " > "

// FeedRecord is a product decoded from a supplier feed, before category mapping.
type FeedRecord struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	RawCategory   string            `json:"rawCategory"`
	Stock         int               `json:"stock"`
	RetailPrice   string            `json:"retailPrice"`
	WebOfferPrice string            `json:"webOfferPrice"`
	MainImage     *string           `json:"mainImage"`
	Images        []string          `json:"images"`
	SKU           *string           `json:"sku,omitempty"`
	Model         *string           `json:"model,omitempty"`
	EAN           *string           `json:"ean,omitempty"`
	Manufacturer  *string           `json:"manufacturer,omitempty"`
	URL           *string           `json:"url,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// CategoryMapping is the result of reconciling a raw category with the store category tree.
type CategoryMapping struct {
	RawCategory string  `json:"rawCategory"`
	Category    string  `json:"category"`
	CategoryID  *string `json:"categoryId"`
}

// MappedRecord is a feed record with its category mapping.
type MappedRecord struct {
	FeedRecord
	Category   string  `json:"category"`
	CategoryID *string `json:"categoryId"`
}

// CategoryCount is a distinct raw category found in a feed together with its mapping.
type CategoryCount struct {
	RawCategory string  `json:"rawCategory"`
	Category    string  `json:"category"`
	CategoryID  *string `json:"categoryId"`
	Products    int     `json:"products"`
}

// PricedProduct is a catalog product ready to be stored.
type PricedProduct struct {
	MappedRecord
	Price      decimal.Decimal `json:"price"`
	SupplierID string          `json:"supplierId"`
}

// Key returns catalog document key of the product.
func (p PricedProduct) Key() string {
	return ProductKey(p.SupplierID, p.ID)
}

// ProductKey returns catalog document key for supplier-scoped product id.
func ProductKey(supplierID, recordID string) string {
	return "prod-" + supplierID + "-" + recordID
}

// StoreCategory is a node of the curated category tree in its flat, persisted form.
type StoreCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ParentID      *string  `json:"parentId"`
	Order         int      `json:"order"`
	RawCategories []string `json:"rawCategories"`
}

// MarkupRule is percentage markup applied to prices within inclusive [From, To] range.
type MarkupRule struct {
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Markup float64 `json:"markup"`
}

// Supplier is a feed supplier.
type Supplier struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	URL            string       `json:"url"`
	Dialect        string       `json:"dialect"`
	MarkupRules    []MarkupRule `json:"markupRules"`
	ConversionRate float64      `json:"conversionRate"`
	Profitability  float64      `json:"profitability"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Selection is the set of raw categories an operator picked for syncing.
type Selection struct {
	All           bool     `json:"all"`
	RawCategories []string `json:"rawCategories,omitempty"`
}

// IsEmpty reports whether selection picks nothing.
func (s Selection) IsEmpty() bool {
	return !s.All && len(s.RawCategories) == 0
}

// Includes reports whether products with provided raw category are selected.
func (s Selection) Includes(rawCategory string) bool {
	if s.All {
		return true
	}
	for _, selected := range s.RawCategories {
		if selected == rawCategory {
			return true
		}
	}
	return false
}

// SyncMode is a kind of sync run.
type SyncMode string

const (
	// SyncModeFull is operator-confirmed sync.
	SyncModeFull SyncMode = "full"
	// SyncModeQuick replays the last confirmed selection.
	SyncModeQuick SyncMode = "quick"
)

// Run is sync process run model.
type Run struct {
	ID              int        `json:"id"`
	SupplierID      string     `json:"supplierId"`
	Mode            SyncMode   `json:"mode"`
	CreatedAt       time.Time  `json:"createdAt"`
	FinishedAt      *time.Time `json:"finishedAt"`
	IsSuccess       *bool      `json:"isSuccess"`
	StatusMessage   *string    `json:"statusMessage"`
	CreatedProducts *int32     `json:"createdProducts"`
	UpdatedProducts *int32     `json:"updatedProducts"`
	SkippedProducts *int32     `json:"skippedProducts"`
}
