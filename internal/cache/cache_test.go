package cache

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func mkXLSX(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

var header = []any{"SAP", "ROMP", "Catalog", "Shipped Qty", "Ship Date", "Carrier"}

func TestCacheReusesUnchangedBuild(t *testing.T) {
	dir := t.TempDir()
	mkXLSX(t, filepath.Join(dir, "a.xlsx"), [][]any{
		header,
		{"10", "01", "X", 5, "2024-01-10", "FedEx"},
	})

	c := New(dir)
	first, stats, rebuilt, err := c.Get()
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt {
		t.Fatal("first Get must build")
	}
	if stats.Rows != 1 {
		t.Fatalf("rows=%d want 1", stats.Rows)
	}

	second, _, rebuilt, err := c.Get()
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt {
		t.Fatal("unchanged sources must not rebuild")
	}
	if first != second {
		t.Fatal("cached table instance expected")
	}
}

func TestCacheRebuildsWhenSourcesChange(t *testing.T) {
	dir := t.TempDir()
	mkXLSX(t, filepath.Join(dir, "a.xlsx"), [][]any{
		header,
		{"10", "01", "X", 5, "2024-01-10", "FedEx"},
	})

	c := New(dir)
	if _, _, _, err := c.Get(); err != nil {
		t.Fatal(err)
	}

	mkXLSX(t, filepath.Join(dir, "b.xlsx"), [][]any{
		header,
		{"20", "02", "Y", 3, "2024-02-01", "UPS"},
	})

	_, stats, rebuilt, err := c.Get()
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt {
		t.Fatal("new source must trigger a rebuild")
	}
	if stats.Files != 2 || stats.Rows != 2 {
		t.Fatalf("stats=%+v", stats)
	}
}

func TestCacheInvalidateForcesRebuild(t *testing.T) {
	dir := t.TempDir()
	mkXLSX(t, filepath.Join(dir, "a.xlsx"), [][]any{
		header,
		{"10", "01", "X", 5, "2024-01-10", "FedEx"},
	})

	c := New(dir)
	if _, _, _, err := c.Get(); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()

	_, _, rebuilt, err := c.Get()
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt {
		t.Fatal("Invalidate must force the next Get to rebuild")
	}
}
