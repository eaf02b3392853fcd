// Package services provides technical concerns like token signing, password hashing, and file export
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/utils"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName = "Empresas"
	exportFileName  = "reporte_empresas.xlsx"
)

// ExcelService writes company reports as spreadsheet files
type ExcelService interface {
	ExportCompanies(companies []*models.Company) (string, error)
}

// ExcelServiceImpl implements ExcelService using the excelize library
type ExcelServiceImpl struct {
	exportDir  string
	publicPath string
}

// NewExcelService creates an excel export service rooted at the given directory.
// The directory is created on first use if it does not exist.
func NewExcelService(exportDir, publicPath string) ExcelService {
	return &ExcelServiceImpl{
		exportDir:  exportDir,
		publicPath: publicPath,
	}
}

// ExportCompanies writes every given company to a single-sheet workbook and
// returns the public URL path of the written file. Each call overwrites the
// previous report, so the file always reflects the latest full listing.
func (s *ExcelServiceImpl) ExportCompanies(companies []*models.Company) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := []any{"Nombre", "Nivel de Impacto", "Años de Trayectoria", "Categoría", "Descripción"}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	currentYear := utils.CurrentYear()
	for i, company := range companies {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to resolve row cell: %w", err)
		}
		row := []any{
			company.Name,
			company.ImpactLevel,
			currentYear - company.FoundingYear,
			company.Category,
			company.Description,
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write company row: %w", err)
		}
	}

	path := filepath.Join(s.exportDir, exportFileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export file: %w", err)
	}

	return strings.TrimRight(s.publicPath, "/") + "/" + exportFileName, nil
}
