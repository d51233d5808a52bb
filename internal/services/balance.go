package services

import (
	"time"

	apperrors "kassa/internal/errors"
	"kassa/internal/store"
)

// BalanceReport holds the owner's point-in-time ledger aggregates,
// all in kopecks.
type BalanceReport struct {
	TotalIncome   int64 `json:"total_income"`
	TotalSpending int64 `json:"total_spending"`
	Balance       int64 `json:"balance"`
}

// getBalance computes the owner's balance as of maxDate: income minus
// spending over every record dated at or before the cutoff. Future-dated
// records never contribute; an income dated tomorrow cannot cover a
// payment made today. Only scoped sums are read, never full record sets.
func getBalance(st store.Store, userID string, maxDate time.Time) (BalanceReport, error) {
	income, err := st.SumIncome(userID, maxDate)
	if err != nil {
		return BalanceReport{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	spending, err := st.SumPayments(userID, maxDate)
	if err != nil {
		return BalanceReport{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return BalanceReport{
		TotalIncome:   income,
		TotalSpending: spending,
		Balance:       income - spending,
	}, nil
}

// checkBalance rejects a proposed payment amount that would overdraw the
// owner's balance at the payment's own date. previousAmount is the amount
// the proposal replaces: when an existing payment is edited, its old
// amount is added back so the proposal is judged against the ledger as it
// would be without it. Zero for a create. The caller must run this inside
// the same store transaction as the write it guards, otherwise two
// concurrent creates could both pass against a stale balance.
func checkBalance(st store.Store, userID string, desiredAmount int64, maxDate time.Time, previousAmount int64) error {
	report, err := getBalance(st, userID, maxDate)
	if err != nil {
		return err
	}
	available := report.Balance + previousAmount
	if available-desiredAmount < 0 {
		return apperrors.NewSpendingOverBalance(desiredAmount, available)
	}
	return nil
}

// elapsedDays returns the whole days spanned by the owner's ledger within
// the window: from the oldest record up to the cutoff or the newest
// record, whichever is later. Zero when the window holds no records, so
// downstream rate math has a documented fallback instead of a division error.
func elapsedDays(st store.Store, userID string, window store.Window, cutoff time.Time) (int64, error) {
	oldest, newest, ok, err := st.MinMaxDates(userID, window)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return 0, nil
	}
	end := cutoff
	if newest.After(end) {
		end = newest
	}
	return int64(end.Sub(oldest).Hours() / 24), nil
}

// ratePerDay averages spending over the elapsed days. On day one, with no
// elapsed days yet, the spend itself is the rate: a first-day report still
// shows a number instead of failing.
func ratePerDay(spending, days int64) int64 {
	if days == 0 {
		return spending
	}
	return spending / days
}

// daysLeft projects how many days the balance lasts at the given daily
// rate. A zero rate means there is no burn to project against, which is a
// business rule violation rather than a crash.
func daysLeft(balance, rate int64) (int64, error) {
	if rate == 0 {
		return 0, apperrors.ErrNothingToCompute
	}
	return balance / rate, nil
}
