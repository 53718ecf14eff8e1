package dto

import "time"

// CreateItemRequest entrada para crear un ítem.
// Barcode vacío = sin código; si viene, debe ser único global.
type CreateItemRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	Barcode           string `json:"barcode" validate:"omitempty,max=64"`
	LowStockThreshold *int   `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// UpdateItemQuantityRequest entrada del update de cantidad: el cliente envía
// la cantidad ABSOLUTA nueva (no un delta). Puntero para distinguir 0 de ausente.
type UpdateItemQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateItemThresholdRequest entrada para fijar o limpiar el umbral propio del
// ítem (null = volver al default de la company).
type UpdateItemThresholdRequest struct {
	Threshold *int `json:"threshold" validate:"omitempty,min=0"`
}

// ItemResponse salida de un ítem con su estado derivado.
type ItemResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	Barcode           *string   `json:"barcode,omitempty"`
	LowStockThreshold *int      `json:"low_stock_threshold,omitempty"`
	Status            string    `json:"status"` // in_stock, low_stock, out_of_stock
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
