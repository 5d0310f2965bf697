package handler

import (
	"time"

	"exalum/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductDTO is the wire representation of a catalog product.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"codigo"`
	Description string    `json:"descricao"`
	Type        string    `json:"tipo,omitempty"`
	Alloy       string    `json:"liga,omitempty"`
	Color       string    `json:"cor,omitempty"`
	SalePrice   float64   `json:"preco_venda"`
	Weight      float64   `json:"peso"`
	Unit        string    `json:"unidade"`
	PhotoURL    string    `json:"foto_url,omitempty"`
	Stock       int       `json:"estoque"`
}

// CartDTO is the wire representation of a cart slot.
type CartDTO struct {
	Key       string            `json:"chave"`
	Items     []entity.CartItem `json:"itens"`
	Total     float64           `json:"valor_total"`
	ItemCount int               `json:"quantidade_itens"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toProductDTO(product *entity.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Code:        product.Code,
		Description: product.Description,
		Type:        product.Type,
		Alloy:       product.Alloy,
		Color:       product.Color,
		SalePrice:   product.SalePrice,
		Weight:      product.Weight,
		Unit:        product.Unit,
		PhotoURL:    product.PhotoURL,
		Stock:       product.AvailableStock(),
	}
}

func toProductDTOs(products []*entity.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toProductDTO(product))
	}

	return dtos
}

func toCartDTO(cart *entity.Cart) CartDTO {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return CartDTO{
		Key:       cart.Key,
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
		UpdatedAt: cart.UpdatedAt,
	}
}
