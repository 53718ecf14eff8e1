package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// Tope de ítems por reporte. Por encima de esto el PDF deja de ser útil
// impreso; el listado paginado de la API no tiene este límite.
const reportMaxItems = 1000

// ReportUseCase genera el reporte de inventario en PDF.
type ReportUseCase struct {
	companyRepo repository.CompanyRepository
	itemRepo    repository.ItemRepository
	generator   InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(companyRepo repository.CompanyRepository, itemRepo repository.ItemRepository, generator InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{companyRepo: companyRepo, itemRepo: itemRepo, generator: generator}
}

// InventoryReport arma el PDF con el inventario completo de la company.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la company del token ya no existe.
func (uc *ReportUseCase) InventoryReport(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener company: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByCompany(companyID, reportMaxItems, 0)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar ítems: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInventoryPDF(ctx, company, items)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("inventario_%s_%s.pdf", company.Code, time.Now().UTC().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
