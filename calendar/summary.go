/*
summary.go - Monthly aggregation and residual balances

PURPOSE:

	Groups an annotated calendar by month, sums consumed hours per category,
	and computes residual balances: accrued-to-date minus used plus the fixed
	prior-year carry-over.

ACCRUAL MODEL:

	Accrual is a flat monthly rate, not prorated by working days. Cumulative
	accrual through month m is rate * m. The carry-over is a constant offset
	added uniformly to every month's residual: it models last year's leftover
	balance added once, never divided across months.
*/
package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summarize derives one MonthlySummary per month present in the calendar,
// ordered by ascending month. Days outside cfg.Year are ignored, which
// defends against a calendar built across a year boundary. Months absent
// from the calendar produce no rows: a partial-year calendar yields a
// partial summary.
func Summarize(cal *Calendar, cfg Config) []MonthlySummary {
	var (
		usedVac [13]decimal.Decimal
		usedPTO [13]decimal.Decimal
		present [13]bool
	)
	for i := range cal.Days {
		day := &cal.Days[i]
		if day.Date.Year != cfg.Year {
			continue
		}
		m := day.Date.Month
		present[m] = true
		usedVac[m] = usedVac[m].Add(day.VacationHours)
		usedPTO[m] = usedPTO[m].Add(day.PTOHours)
	}

	rateVac := cfg.Rate(CategoryVacation)
	ratePTO := cfg.Rate(CategoryPTO)
	carryVac := cfg.Carryover(CategoryVacation)
	carryPTO := cfg.Carryover(CategoryPTO)

	summaries := make([]MonthlySummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		if !present[m] {
			continue
		}
		months := decimal.NewFromInt(int64(m))
		accruedVac := rateVac.Mul(months)
		accruedPTO := ratePTO.Mul(months)
		summaries = append(summaries, MonthlySummary{
			Month:            m,
			VacationUsed:     usedVac[m],
			PTOUsed:          usedPTO[m],
			VacationAccrued:  accruedVac,
			PTOAccrued:       accruedPTO,
			VacationResidual: accruedVac.Sub(usedVac[m]).Add(carryVac),
			PTOResidual:      accruedPTO.Sub(usedPTO[m]).Add(carryPTO),
		})
	}
	return summaries
}
