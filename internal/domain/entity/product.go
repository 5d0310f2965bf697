// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Prices are per sale unit (a 6 metre bar for
// extruded profiles) and weight is expressed in kg per metre.
type Product struct {
	ID          uuid.UUID // The unique identifier of the product.
	Code        string    // Short human-facing product code, e.g. "EX-1030".
	Description string    // Full commercial description, used for ordering and search.
	Type        string    // Product family, e.g. "perfil", "chapa". Empty when unclassified.
	Alloy       string    // Aluminum alloy designation, e.g. "6063". Empty when unclassified.
	Color       string    // Finish color name. Empty when unclassified.
	SalePrice   float64   // Unit sale price. Never negative.
	Weight      float64   // Weight per metre in kg. Never negative.
	Unit        string    // Sale unit, e.g. "barra".
	PhotoURL    string    // Optional product photo reference.
	Stock       *StockLevel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockLevel is the quantity on hand for one product.
type StockLevel struct {
	ProductID uuid.UUID
	Quantity  int // Never negative.
	UpdatedAt time.Time
}

// AvailableStock returns the quantity on hand, treating a product without a
// stock record as unavailable.
func (p *Product) AvailableStock() int {
	if p.Stock == nil {
		return 0
	}

	return p.Stock.Quantity
}
