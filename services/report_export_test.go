package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportCaseReport(t *testing.T) {
	db := setupTestDB()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	lawyer := createTestLawyer(db, "export@example.com")
	court := createTestCourt(db, "Export Court")
	createTestCase(db, lawyer.ID, court.ID, "CASE-EXPORT-1")

	var buf bytes.Buffer
	assert.NoError(t, ExportCaseReport(db, now, &buf))
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Cases", "Lawyer Caseloads", "Court Caseloads"}, f.GetSheetList())

	value, err := f.GetCellValue("Cases", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "CASE-EXPORT-1", value)

	value, err = f.GetCellValue("Lawyer Caseloads", "A2")
	assert.NoError(t, err)
	assert.Equal(t, lawyer.FullName(), value)
}
