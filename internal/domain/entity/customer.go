package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Customer is a buyer record. Customers created through the public catalog
// carry only a name and phone; the tax id is derived from the phone and is
// the upsert key for reusing the same customer across orders.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	TaxID     string // Digits-only key derived from the phone. Unique.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveTaxID strips every non-digit character from the phone field, yielding
// the key used to look up and deduplicate customers.
func DeriveTaxID(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
