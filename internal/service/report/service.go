package report

import (
	"context"
	"fmt"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/review"
	"github.com/xuri/excelize/v2"
)

// ReportService renders collaborator histories as downloadable files. The
// rows come from the approval service's export; this layer only formats.
type ReportService struct {
	approval         review.ApprovalService
	collaboratorRepo collaborator.CollaboratorRepository
}

func NewReportService(approval review.ApprovalService, collaboratorRepo collaborator.CollaboratorRepository) *ReportService {
	return &ReportService{
		approval:         approval,
		collaboratorRepo: collaboratorRepo,
	}
}

// ExportXLSX renders a collaborator's history as an XLSX workbook with one
// sheet named after the collaborator.
func (s *ReportService) ExportXLSX(ctx context.Context, collaboratorID string) ([]byte, error) {
	c, err := s.collaboratorRepo.GetByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	rows, err := s.approval.ExportHistory(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Historial"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Dia", "Entrada", "Salida", "Horas"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
	}
	if err := f.SetCellValue(sheet, "F1", c.FullName); err != nil {
		return nil, fmt.Errorf("error writing collaborator name: %w", err)
	}

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.Dia)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Entrada)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Salida)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.Horas)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error rendering workbook: %w", err)
	}
	return buf.Bytes(), nil
}
