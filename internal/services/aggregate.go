package services

import (
	"sort"
	"time"

	"kassa/internal/store"
)

// MonthTotal is one calendar-month spending bucket.
type MonthTotal struct {
	Month  time.Month `json:"month"`
	Name   string     `json:"name"`
	Amount int64      `json:"amount"`
}

// CategoryShare is one category's contribution to the period total.
// Share is floor-rounded so the displayed percentages never overstate:
// the sum of shares is at most 100 by construction.
type CategoryShare struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Share  int    `json:"share"`
}

// monthlyTotals buckets records by calendar month (1-12), summing amounts.
// Months recur across years and are merged; callers wanting a single
// year's buckets must pre-filter the input. The result is ordered January
// through December, empty months omitted.
func monthlyTotals(records []store.Record) []MonthTotal {
	sums := make(map[time.Month]int64)
	for _, r := range records {
		sums[r.Date.Month()] += r.Amount
	}

	totals := make([]MonthTotal, 0, len(sums))
	for m := time.January; m <= time.December; m++ {
		if amount, ok := sums[m]; ok {
			totals = append(totals, MonthTotal{Month: m, Name: m.String(), Amount: amount})
		}
	}
	return totals
}

// categoryShares sums records per category and computes each category's
// floored percentage of total. Ordered by share descending, name ascending
// on ties. A non-positive total yields no shares.
func categoryShares(records []store.Record, total int64) []CategoryShare {
	if total <= 0 {
		return []CategoryShare{}
	}

	sums := make(map[string]int64)
	for _, r := range records {
		sums[r.CategoryName] += r.Amount
	}

	shares := make([]CategoryShare, 0, len(sums))
	for name, amount := range sums {
		shares = append(shares, CategoryShare{
			Name:   name,
			Amount: amount,
			Share:  int(amount * 100 / total),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Share != shares[j].Share {
			return shares[i].Share > shares[j].Share
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}
