// Package stats buckets time-stamped monetary records into a fixed
// year/quarter/month grid for reporting. It is a pure transform: callers run
// the queries and hand in the records, nothing here touches the database.
package stats

import (
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultWindowYears is the trailing window length used by the profile views.
const DefaultWindowYears = 5

// Timed pairs a value with its record date.
type Timed[T any] struct {
	Value T
	Date  time.Time
}

// Grid is indexed by [yearOffset][quarter][monthWithinQuarter], year offsets
// counted from the window's start year.
type Grid[T any] [][4][3]T

// NewGrid returns a zero grid spanning windowYears years.
func NewGrid[T any](windowYears int) Grid[T] {
	return make(Grid[T], windowYears)
}

// WindowStartYear returns the first year of a trailing window of the given
// length ending at now's year.
func WindowStartYear(now time.Time, windowYears int) int {
	return now.Year() - windowYears + 1
}

// Collect buckets items into a fresh grid using the supplied merge function,
// which must be associative and commutative. Records dated before the window's
// first year are excluded; records past its last year are dropped as well.
func Collect[T any](items []Timed[T], startYear, windowYears int, merge func(acc *T, v T)) Grid[T] {
	grid := NewGrid[T](windowYears)
	for _, item := range items {
		year := item.Date.Year()
		if year < startYear || year >= startYear+windowYears {
			continue
		}
		month := int(item.Date.Month()) - 1
		merge(&grid[year-startYear][month/3][month%3], item.Value)
	}
	return grid
}

// Bucket accumulates a decimal total and a record count.
type Bucket struct {
	Total decimal.Decimal
	Count int
}

// MergeBucket is the pairwise accumulation for Bucket grids.
func MergeBucket(acc *Bucket, v Bucket) {
	acc.Total = acc.Total.Add(v.Total)
	acc.Count += v.Count
}

// AmountAt is a monetary record with its date.
type AmountAt struct {
	Amount decimal.Decimal
	Date   time.Time
}

// CollectAmounts buckets monetary records into a sum/count grid.
func CollectAmounts(items []AmountAt, startYear, windowYears int) Grid[Bucket] {
	timed := lo.Map(items, func(item AmountAt, _ int) Timed[Bucket] {
		return Timed[Bucket]{Value: Bucket{Total: item.Amount, Count: 1}, Date: item.Date}
	})
	return Collect(timed, startYear, windowYears, MergeBucket)
}

var quarterLabels = [4]string{"Q1", "Q2", "Q3", "Q4"}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// CellReport is one month bucket with its calendar label.
type CellReport struct {
	Label string
	Total decimal.Decimal
	Count int
}

// QuarterReport is a quarter's three months with derived subtotals.
type QuarterReport struct {
	Label  string
	Total  decimal.Decimal
	Count  int
	Months [3]CellReport
}

// YearReport is a year's four quarters with derived totals.
type YearReport struct {
	Label    string
	Total    decimal.Decimal
	Count    int
	Quarters [4]QuarterReport
}

// Report is the presentation-ready statistic, most recent year first.
type Report []YearReport

// BuildReport derives per-quarter and per-year subtotals from a bucket grid
// and labels every cell. Years come out most-recent-first.
func BuildReport(grid Grid[Bucket], startYear int) Report {
	report := make(Report, len(grid))
	for i, yearGrid := range grid {
		year := YearReport{Label: strconv.Itoa(startYear + i)}
		for j, quarterGrid := range yearGrid {
			quarter := QuarterReport{Label: quarterLabels[j]}
			for k, cell := range quarterGrid {
				quarter.Months[k] = CellReport{
					Label: monthLabels[j*3+k],
					Total: cell.Total,
					Count: cell.Count,
				}
				quarter.Total = quarter.Total.Add(cell.Total)
				quarter.Count += cell.Count
			}
			year.Total = year.Total.Add(quarter.Total)
			year.Count += quarter.Count
			year.Quarters[j] = quarter
		}
		report[i] = year
	}
	return lo.Reverse(report)
}
