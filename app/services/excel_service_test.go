package services

import (
	"path/filepath"
	"testing"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCompanies_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	svc := NewExcelService(dir, "/exports")

	companies := []*models.Company{
		{Name: "acme", ImpactLevel: models.ImpactLevelHigh, FoundingYear: 2000, Category: "Tech", Description: "widgets"},
		{Name: "globex", ImpactLevel: models.ImpactLevelLow, FoundingYear: 2015, Category: "Energy", Description: "power"},
	}

	url, err := svc.ExportCompanies(companies)
	require.NoError(t, err)
	assert.Equal(t, "/exports/reporte_empresas.xlsx", url)

	f, err := excelize.OpenFile(filepath.Join(dir, exportFileName))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Nombre", "Nivel de Impacto", "Años de Trayectoria", "Categoría", "Descripción"}, rows[0])
	assert.Equal(t, "acme", rows[1][0])
	assert.Equal(t, "globex", rows[2][0])

	yearsActive, err := f.GetCellValue(exportSheetName, "C2")
	require.NoError(t, err)
	expected := utils.CurrentYear() - 2000
	assert.Equal(t, expected, mustAtoi(t, yearsActive))
}

func TestExportCompanies_EmptyListStillWritesHeader(t *testing.T) {
	dir := t.TempDir()
	svc := NewExcelService(dir, "/exports/")

	url, err := svc.ExportCompanies(nil)
	require.NoError(t, err)
	assert.Equal(t, "/exports/reporte_empresas.xlsx", url)

	f, err := excelize.OpenFile(filepath.Join(dir, exportFileName))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportCompanies_OverwritesPreviousReport(t *testing.T) {
	dir := t.TempDir()
	svc := NewExcelService(dir, "/exports")

	_, err := svc.ExportCompanies([]*models.Company{{Name: "first", FoundingYear: 2010}})
	require.NoError(t, err)

	_, err = svc.ExportCompanies([]*models.Company{{Name: "second", FoundingYear: 2012}})
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, exportFileName))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[1][0])
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	for _, r := range s {
		require.True(t, r >= '0' && r <= '9')
		n = n*10 + int(r-'0')
	}
	return n
}
