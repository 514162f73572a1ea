package sink

import (
	"path/filepath"
	"testing"

	"github.com/skuforge/skuforge/internal/model"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenCatalog failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testRecords(n int) []model.Record {
	price := 500.0
	records := make([]model.Record, n)
	for i := range records {
		rec := model.NewRecord()
		rec.ID = "101"
		rec.Title = "WIDGETS"
		rec.Price = &price
		rec.SetAttr("Pack Size", "10 Pcs")
		records[i] = rec
	}
	return records
}

func TestCatalog_StoreAndCount(t *testing.T) {
	c := openTestCatalog(t)

	if err := c.StoreDocument("a.csv", testRecords(3)); err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}
	if err := c.StoreDocument("b.csv", testRecords(2)); err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("Expected 5 records, got %d", n)
	}
}

func TestCatalog_RestoreReplacesDocument(t *testing.T) {
	c := openTestCatalog(t)

	if err := c.StoreDocument("a.csv", testRecords(4)); err != nil {
		t.Fatal(err)
	}
	// Re-converting the same document replaces, never appends.
	if err := c.StoreDocument("a.csv", testRecords(1)); err != nil {
		t.Fatal(err)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Expected 1 record after replace, got %d", n)
	}
}

func TestCatalog_NullPrice(t *testing.T) {
	c := openTestCatalog(t)

	rec := model.NewRecord()
	rec.ID = "DCD776"
	if err := c.StoreDocument("tools.csv", []model.Record{rec}); err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}

	var price *float64
	err := c.db.QueryRow(`SELECT price FROM records WHERE id = ?`, "DCD776").Scan(&price)
	if err != nil {
		t.Fatal(err)
	}
	if price != nil {
		t.Errorf("Expected NULL price, got %v", *price)
	}
}

func TestCatalog_EmptyDocument(t *testing.T) {
	c := openTestCatalog(t)
	if err := c.StoreDocument("empty.csv", nil); err != nil {
		t.Fatalf("Expected an empty store to succeed: %v", err)
	}
	n, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected 0 records, got %d", n)
	}
}
