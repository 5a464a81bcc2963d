package utils

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeTestXLSX(t *testing.T, sheetXML, sharedXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	sheet, err := w.Create("xl/worksheets/sheet1.xml")
	if err != nil {
		t.Fatalf("zip sheet: %v", err)
	}
	if _, err := sheet.Write([]byte(sheetXML)); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	if sharedXML != "" {
		shared, err := w.Create("xl/sharedStrings.xml")
		if err != nil {
			t.Fatalf("zip shared: %v", err)
		}
		if _, err := shared.Write([]byte(sharedXML)); err != nil {
			t.Fatalf("write shared: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestReadXLSXRows(t *testing.T) {
	sheet := `<?xml version="1.0"?>
<worksheet><sheetData>
<row r="1">
  <c r="A1" t="s"><v>0</v></c>
  <c r="B1" t="s"><v>1</v></c>
</row>
<row r="2">
  <c r="A2" t="inlineStr"><is><t>1234567890121</t></is></c>
  <c r="C2"><v>3.85</v></c>
</row>
</sheetData></worksheet>`
	shared := `<?xml version="1.0"?>
<sst><si><t>เลขประจำตัวประชาชน</t></si><si><t>ชื่อ</t></si></sst>`

	rows, err := ReadXLSXRows(writeTestXLSX(t, sheet, shared))
	if err != nil {
		t.Fatalf("ReadXLSXRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "เลขประจำตัวประชาชน" || rows[0][1] != "ชื่อ" {
		t.Errorf("header row = %v", rows[0])
	}
	// Column B of the second row is empty and must be padded, not skipped.
	if len(rows[1]) != 3 || rows[1][0] != "1234567890121" || rows[1][1] != "" || rows[1][2] != "3.85" {
		t.Errorf("data row = %v", rows[1])
	}
}

// Some writers omit the r attribute on cells entirely; the reader must
// fall back to positional columns instead of panicking.
func TestReadXLSXRowsCellWithoutReference(t *testing.T) {
	sheet := `<?xml version="1.0"?>
<worksheet><sheetData>
<row>
  <c t="inlineStr"><is><t>เลขประจำตัวประชาชน</t></is></c>
  <c t="inlineStr"><is><t>ชื่อ</t></is></c>
</row>
<row>
  <c t="inlineStr"><is><t>1234567890121</t></is></c>
  <c><v>3.85</v></c>
</row>
</sheetData></worksheet>`

	rows, err := ReadXLSXRows(writeTestXLSX(t, sheet, ""))
	if err != nil {
		t.Fatalf("ReadXLSXRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "เลขประจำตัวประชาชน" || rows[0][1] != "ชื่อ" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "1234567890121" || rows[1][1] != "3.85" {
		t.Errorf("data row = %v", rows[1])
	}
}

func TestReadXLSXRowsNoWorksheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w := zip.NewWriter(f)
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	f.Close()

	if _, err := ReadXLSXRows(path); err == nil {
		t.Error("expected error for archive without a worksheet")
	}
}

func TestNormalizeHeadersAndReadRow(t *testing.T) {
	headers := NormalizeHeaders([]string{" ชื่อ ", "", "นามสกุล"})
	if len(headers) != 2 {
		t.Fatalf("headers = %v", headers)
	}
	values := ReadRow(headers, []string{" สมชาย ", "x", "ใจดี\x00"})
	if values["ชื่อ"] != "สมชาย" || values["นามสกุล"] != "ใจดี" {
		t.Errorf("values = %v", values)
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("  ") != nil {
		t.Error("blank cell should be nil")
	}
	if v := OptionalString(" 101 "); v == nil || *v != "101" {
		t.Errorf("OptionalString = %v", v)
	}
}
