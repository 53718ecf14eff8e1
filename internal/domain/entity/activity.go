package entity

import "time"

// Tipos de actividad (deben coincidir con el CHECK de la tabla activities).
const (
	ActivityCreated = "created"
	ActivityAdded   = "added"
	ActivityRemoved = "removed"
	ActivityDeleted = "deleted"
)

// Activity es una entrada del registro de auditoría de inventario.
// Append-only: se crea junto con la mutación que la origina (misma transacción),
// nunca se actualiza y solo se borra al purgar la company completa.
// ItemName y UserName son snapshots desnormalizados: sobreviven al borrado
// del ítem (ItemID pasa a nil) y al borrado del usuario (reasignación).
type Activity struct {
	ID           string
	CompanyID    string
	UserID       string
	ItemID       *string // nil cuando el ítem ya fue borrado
	Type         string  // created, added, removed, deleted
	Quantity     int     // magnitud del cambio (|nueva − anterior|), siempre >= 0
	OldQuantity  *int    // cantidad previa en updates; nil en created/deleted
	ItemName     string
	UserName     string
	SessionTitle *string // etiqueta compartida por un lote; nil fuera de lotes
	CreatedAt    time.Time
}
