package report

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salman854/inventory-agents/internal/models"
)

func sampleRecords() map[string]models.Product {
	return map[string]models.Product{
		"P002": {Name: "Mechanical Keyboard", Quantity: 15, Price: decimal.NewFromFloat(89.99), Category: "Electronics", LastUpdated: time.Now()},
		"P001": {Name: "Wireless Mouse", Quantity: 50, Price: decimal.NewFromFloat(19.99), Category: "Electronics", LastUpdated: time.Now()},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Chdir(t.TempDir())
	path, err := WriteCSV(sampleRecords())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][5] != "Last Updated" {
		t.Fatalf("header = %v", rows[0])
	}
	// rows sorted by ID
	if rows[1][0] != "P001" || rows[1][1] != "Wireless Mouse" || rows[1][4] != "19.99" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[2][0] != "P002" || rows[2][3] != "15" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	t.Chdir(t.TempDir())
	path, err := WriteXLSX(sampleRecords())
	if err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	defer os.Remove(path)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty spreadsheet")
	}
}

func TestTransientFilenamesAreUnique(t *testing.T) {
	t.Chdir(t.TempDir())
	a, err := WriteCSV(nil)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	defer os.Remove(a)
	b, err := WriteCSV(nil)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	defer os.Remove(b)
	if a == b {
		t.Fatalf("filenames collide: %s", a)
	}
}
