package feed

import (
	"testing"
	"time"
)

func TestSortByPublishedNewestFirst(t *testing.T) {
	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "older", Published: &older},
		{Title: "newer", Published: &newer},
	}

	SortByPublished(items)

	if items[0].Title != "newer" {
		t.Errorf("Expected newest first, got: %s", items[0].Title)
	}
}

func TestSortByPublishedNilSortsLast(t *testing.T) {
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "undated"},
		{Title: "dated", Published: &when},
		{Title: "also undated"},
	}

	SortByPublished(items)

	if items[0].Title != "dated" {
		t.Errorf("Expected dated item first, got: %s", items[0].Title)
	}
	// Stable: undated items keep their relative order
	if items[1].Title != "undated" || items[2].Title != "also undated" {
		t.Errorf("Expected stable order for undated items, got: %s, %s", items[1].Title, items[2].Title)
	}
}
