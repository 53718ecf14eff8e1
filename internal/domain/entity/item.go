package entity

import "time"

// Estados derivados de un ítem (mutuamente excluyentes).
const (
	ItemStatusInStock    = "in_stock"
	ItemStatusLowStock   = "low_stock"
	ItemStatusOutOfStock = "out_of_stock"
)

// Item representa un artículo del inventario de una Company.
// Quantity nunca es negativa (se satura en 0, también con CHECK en la tabla).
// Barcode es único global cuando está presente: un código físico identifica
// un solo artículo en todo el sistema, sin importar el tenant.
type Item struct {
	ID                string
	CompanyID         string
	Name              string
	Quantity          int
	Barcode           *string // nil = sin código de barras
	LowStockThreshold *int    // nil = usar el umbral por defecto de la company
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveThreshold resuelve el umbral aplicable: el del ítem si existe,
// si no el por defecto de la company, si no nil (sin umbral).
func (i *Item) EffectiveThreshold(companyDefault *int) *int {
	if i.LowStockThreshold != nil {
		return i.LowStockThreshold
	}
	return companyDefault
}

// Status calcula el estado derivado del ítem. out_of_stock tiene prioridad:
// un ítem en cero nunca se reporta como low_stock.
func (i *Item) Status(companyDefault *int) string {
	if i.Quantity == 0 {
		return ItemStatusOutOfStock
	}
	if t := i.EffectiveThreshold(companyDefault); t != nil && i.Quantity <= *t {
		return ItemStatusLowStock
	}
	return ItemStatusInStock
}
