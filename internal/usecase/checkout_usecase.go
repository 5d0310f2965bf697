package usecase

import "context"

// CheckoutUsecase defines the interface for turning a cart into an order.
type CheckoutUsecase interface {
	// PlaceOrder validates the buyer data and the cart, upserts the
	// customer, creates the order with its line items and clears the cart.
	// The whole sequence runs inside one database transaction.
	PlaceOrder(ctx context.Context, cartKey string, input *CheckoutInput) (*CheckoutOutput, error)
}

// --- Input DTOs ---

// CheckoutInput defines the buyer data collected at checkout.
type CheckoutInput struct {
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
	Notes string `json:"observacoes"`
}

// --- Output DTOs ---

// CheckoutOutput carries the created order reference back to the buyer.
type CheckoutOutput struct {
	OrderNumber string  `json:"numero"`
	Total       float64 `json:"valor_total"`
}
