package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one cart line. Description, unit price and weight are snapshots
// taken when the product was first added; later catalog changes do not alter
// existing lines.
type CartItem struct {
	ProductID   uuid.UUID `json:"produto_id"`
	Description string    `json:"descricao"`
	Quantity    int       `json:"quantidade"`
	UnitPrice   float64   `json:"preco_unitario"`
	Weight      float64   `json:"peso"`
}

// Subtotal returns quantity times the snapshot unit price.
func (it CartItem) Subtotal() float64 {
	return float64(it.Quantity) * it.UnitPrice
}

// Cart holds the ordered list of lines for one device slot. A cart is
// identified by a client-supplied key and survives reloads of the same
// device, never shared across devices.
type Cart struct {
	Key       string
	Items     []CartItem
	UpdatedAt time.Time
}

// NewCart returns an empty cart bound to the given slot key.
func NewCart(key string) *Cart {
	return &Cart{Key: key}
}

// Find returns the line for the given product, or nil when absent.
func (c *Cart) Find(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

// Add puts a product into the cart. A new line starts at quantity 1 and
// snapshots the product's description, price and weight. An existing line is
// incremented by 1, capped at availableStock as known at add time: when the
// line already sits at the cap, Add reports false and the cart is unchanged.
func (c *Cart) Add(product *Product, availableStock int) bool {
	if item := c.Find(product.ID); item != nil {
		if item.Quantity >= availableStock {
			return false
		}
		item.Quantity++

		return true
	}

	c.Items = append(c.Items, CartItem{
		ProductID:   product.ID,
		Description: product.Description,
		Quantity:    1,
		UnitPrice:   product.SalePrice,
		Weight:      product.Weight,
	})

	return true
}

// SetQuantity sets the quantity of an existing line. Any value below 1
// removes the line entirely; that is the single decrement-to-zero policy.
// It reports whether the cart changed.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	if quantity < 1 {
		return c.Remove(productID)
	}

	item := c.Find(productID)
	if item == nil {
		return false
	}
	item.Quantity = quantity

	return true
}

// Remove deletes the line for the given product, reporting whether a line
// was present.
func (c *Cart) Remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total returns the sum of line subtotals.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}

	return total
}

// ItemCount returns the sum of line quantities.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
