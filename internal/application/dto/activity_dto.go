package dto

import "time"

// ActivityResponse salida de una entrada del registro de auditoría.
// ItemName y UserName son los snapshots desnormalizados: siguen presentes
// aunque el ítem o el usuario original ya no existan.
type ActivityResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"` // created, added, removed, deleted
	Quantity     int       `json:"quantity"`
	OldQuantity  *int      `json:"old_quantity,omitempty"`
	ItemID       *string   `json:"item_id,omitempty"`
	ItemName     string    `json:"item_name"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	SessionTitle *string   `json:"session_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActivityListResponse feed paginado de actividades.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BatchAdjustment un ajuste dentro de un lote: delta con signo sobre un ítem.
type BatchAdjustment struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Delta  int    `json:"delta" validate:"required"`
}

// BatchAdjustRequest entrada del procesador de lotes: un título de sesión
// compartido y la lista ordenada de ajustes. Se aplica todo o nada.
type BatchAdjustRequest struct {
	SessionTitle string            `json:"session_title" validate:"required,min=1,max=200"`
	Adjustments  []BatchAdjustment `json:"adjustments" validate:"required,min=1,max=100,dive"`
}

// BatchAdjustResponse confirmación del lote aplicado. Los clientes recargan
// las cantidades con GET /api/items.
type BatchAdjustResponse struct {
	Applied int `json:"applied"`
}
