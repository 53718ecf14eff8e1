package reports

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
)

// InventoryPDFGenerator puerto de render del reporte. La infraestructura
// (Maroto) lo implementa; el use case solo conoce esta interfaz.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, company *entity.Company, items []*entity.Item) ([]byte, error)
}
