package services

import (
	"time"

	apperrors "kassa/internal/errors"
	"kassa/internal/money"
	"kassa/internal/store"
)

// dashboardService builds the periodic spending summaries.
type dashboardService struct {
	store     store.Store
	formatter *money.Formatter
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(st store.Store, formatter *money.Formatter) DashboardServicer {
	return &dashboardService{store: st, formatter: formatter}
}

// BuildDashboard composes the summary for the requested window: the zero
// window is all-time, otherwise a year or a year+month. The balance is the
// lifetime balance as of the window's cutoff instant, while the month and
// category breakdowns cover only the window. Every aggregate is read at
// the same cutoff so income and spending describe one logical moment.
func (s *dashboardService) BuildDashboard(userID string, window store.Window) (*DashboardView, error) {
	cutoff := time.Now()
	if _, to, ok := window.Bounds(time.Local); ok && to.Before(cutoff) {
		cutoff = to
	}

	var view *DashboardView
	err := s.store.Transact(func(tx store.Store) error {
		report, txErr := getBalance(tx, userID, cutoff)
		if txErr != nil {
			return txErr
		}

		records, txErr := tx.ListRecords(userID, window)
		if txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		spend := make([]store.Record, 0, len(records))
		var windowSpending int64
		for _, r := range records {
			if r.Kind == store.RecordKindPayment {
				spend = append(spend, r)
				windowSpending += r.Amount
			}
		}

		days, txErr := elapsedDays(tx, userID, window, cutoff)
		if txErr != nil {
			return txErr
		}
		rate := ratePerDay(windowSpending, days)

		left, txErr := daysLeft(report.Balance, rate)
		if txErr != nil {
			return txErr
		}

		view = &DashboardView{
			TotalIncome:          report.TotalIncome,
			TotalSpending:        report.TotalSpending,
			Balance:              report.Balance,
			BalanceDisplay:       s.formatter.FormatAmount(report.Balance),
			TotalSpendingDisplay: s.formatter.FormatAmount(windowSpending),
			ElapsedDays:          days,
			RatePerDay:           rate,
			DaysLeft:             left,
			MonthlyTotals:        monthlyTotals(spend),
			CategoryShares:       categoryShares(spend, windowSpending),
		}

		if window.IsZero() {
			years, yearsErr := tx.ListYears(userID)
			if yearsErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, yearsErr)
			}
			view.Years = years
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
