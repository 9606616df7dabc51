// Package report writes transient inventory export files for email
// attachments. Callers delete the file once it has been attached.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/salman854/inventory-agents/internal/models"
)

var columns = []string{"ID", "Name", "Category", "Quantity", "Price", "Last Updated"}

func exportFilename(ext string) string {
	return fmt.Sprintf("inventory_report_%s_%s.%s",
		time.Now().Format("20060102_150405"), uuid.NewString()[:8], ext)
}

// sortedIDs gives exports a stable row order.
func sortedIDs(records map[string]models.Product) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WriteCSV writes all records to a transient CSV file and returns its path.
func WriteCSV(records map[string]models.Product) (string, error) {
	name := exportFilename("csv")
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create csv report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, id := range sortedIDs(records) {
		p := records[id]
		row := []string{
			id,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.Price.String(),
			p.LastUpdated.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv report: %w", err)
	}
	return name, nil
}

// WriteXLSX writes all records to a transient spreadsheet and returns its
// path. Used by the weekly report variant.
func WriteXLSX(records map[string]models.Product) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return "", err
		}
	}
	for rowIdx, id := range sortedIDs(records) {
		p := records[id]
		values := []interface{}{
			id, p.Name, p.Category, p.Quantity, p.Price.InexactFloat64(), p.LastUpdated.Format(time.RFC3339),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	name := exportFilename("xlsx")
	if err := f.SaveAs(name); err != nil {
		return "", fmt.Errorf("save xlsx report: %w", err)
	}
	return name, nil
}
