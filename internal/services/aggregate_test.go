package services

import (
	"testing"
	"time"

	"kassa/internal/store"
)

func record(month time.Month, category string, amount int64) store.Record {
	return store.Record{
		Kind:         store.RecordKindPayment,
		Name:         "r",
		Amount:       amount,
		CategoryName: category,
		Date:         time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []store.Record{
		record(time.March, "food", 20000),
		record(time.January, "food", 10000),
		record(time.March, "fuel", 5000),
	}

	totals := monthlyTotals(records)
	if len(totals) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(totals))
	}
	if totals[0].Month != time.January || totals[0].Amount != 10000 {
		t.Errorf("expected January 10000 first, got %s %d", totals[0].Name, totals[0].Amount)
	}
	if totals[1].Month != time.March || totals[1].Amount != 25000 {
		t.Errorf("expected March 25000 second, got %s %d", totals[1].Name, totals[1].Amount)
	}
	if totals[0].Name != "January" {
		t.Errorf("expected month name January, got %s", totals[0].Name)
	}
}

func TestMonthlyTotalsMergesAcrossYears(t *testing.T) {
	records := []store.Record{
		record(time.June, "food", 10000),
		{
			Kind:         store.RecordKindPayment,
			Amount:       15000,
			CategoryName: "food",
			Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	totals := monthlyTotals(records)
	if len(totals) != 1 {
		t.Fatalf("expected one merged June bucket, got %d", len(totals))
	}
	if totals[0].Amount != 25000 {
		t.Errorf("expected merged amount 25000, got %d", totals[0].Amount)
	}
}

func TestMonthlyTotalsEmpty(t *testing.T) {
	totals := monthlyTotals(nil)
	if len(totals) != 0 {
		t.Errorf("expected no buckets, got %v", totals)
	}
}

func TestCategoryShares(t *testing.T) {
	records := []store.Record{
		record(time.March, "food", 50000),
		record(time.March, "fuel", 30000),
		record(time.April, "food", 10000),
		record(time.April, "rent", 10000),
	}

	shares := categoryShares(records, 100000)
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	if shares[0].Name != "food" || shares[0].Amount != 60000 || shares[0].Share != 60 {
		t.Errorf("expected food 60000 60%%, got %+v", shares[0])
	}
	if shares[1].Name != "fuel" || shares[1].Share != 30 {
		t.Errorf("expected fuel 30%%, got %+v", shares[1])
	}
	if shares[2].Name != "rent" || shares[2].Share != 10 {
		t.Errorf("expected rent 10%%, got %+v", shares[2])
	}
}

func TestCategorySharesFloorNeverOverstates(t *testing.T) {
	// Three equal thirds floor to 33 each; the sum stays under 100.
	records := []store.Record{
		record(time.March, "a", 10000),
		record(time.March, "b", 10000),
		record(time.March, "c", 10000),
	}

	shares := categoryShares(records, 30000)
	sum := 0
	for _, s := range shares {
		if s.Share != 33 {
			t.Errorf("expected floored share 33, got %d for %s", s.Share, s.Name)
		}
		sum += s.Share
	}
	if sum > 100 {
		t.Errorf("share sum must not exceed 100, got %d", sum)
	}
}

func TestCategorySharesTieOrderedByName(t *testing.T) {
	records := []store.Record{
		record(time.March, "zebra", 10000),
		record(time.March, "apple", 10000),
	}

	shares := categoryShares(records, 20000)
	if shares[0].Name != "apple" || shares[1].Name != "zebra" {
		t.Errorf("ties should order by name: got %s, %s", shares[0].Name, shares[1].Name)
	}
}

func TestCategorySharesZeroTotal(t *testing.T) {
	shares := categoryShares(nil, 0)
	if len(shares) != 0 {
		t.Errorf("expected no shares for zero total, got %v", shares)
	}
}
