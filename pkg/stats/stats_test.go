package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowStartYear(t *testing.T) {
	now := date(2026, time.September, 1)

	assert.Equal(t, 2022, WindowStartYear(now, 5))
	assert.Equal(t, 2026, WindowStartYear(now, 1))
}

func TestCollectAmountsSingleYearWindow(t *testing.T) {
	records := []AmountAt{
		{Amount: decimal.RequireFromString("100"), Date: date(2021, time.February, 10)},
		{Amount: decimal.RequireFromString("50"), Date: date(2021, time.May, 1)},
		{Amount: decimal.RequireFromString("999"), Date: date(2020, time.December, 31)},
	}

	grid := CollectAmounts(records, 2021, 1)
	require.Len(t, grid, 1)

	// Feb 2021 lands in Q1 month offset 1, May in Q2 month offset 1
	assert.True(t, grid[0][0][1].Total.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 1, grid[0][0][1].Count)
	assert.True(t, grid[0][1][1].Total.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 1, grid[0][1][1].Count)

	report := BuildReport(grid, 2021)
	require.Len(t, report, 1)

	year := report[0]
	assert.Equal(t, "2021", year.Label)
	assert.True(t, year.Total.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, 2, year.Count)

	q1 := year.Quarters[0]
	assert.Equal(t, "Q1", q1.Label)
	assert.True(t, q1.Total.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 1, q1.Count)

	q2 := year.Quarters[1]
	assert.True(t, q2.Total.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 1, q2.Count)

	// The 2020 record was outside the window entirely
	assert.True(t, year.Quarters[3].Total.IsZero())
}

func TestCollectEmptyInputYieldsZeroGrid(t *testing.T) {
	grid := CollectAmounts(nil, 2022, 5)
	require.Len(t, grid, 5)

	for _, yearGrid := range grid {
		for _, quarterGrid := range yearGrid {
			for _, cell := range quarterGrid {
				assert.True(t, cell.Total.IsZero())
				assert.Zero(t, cell.Count)
			}
		}
	}
}

func TestBuildReportOrdersMostRecentYearFirst(t *testing.T) {
	records := []AmountAt{
		{Amount: decimal.RequireFromString("10"), Date: date(2022, time.January, 5)},
		{Amount: decimal.RequireFromString("20"), Date: date(2024, time.August, 15)},
	}

	grid := CollectAmounts(records, 2022, 3)
	report := BuildReport(grid, 2022)
	require.Len(t, report, 3)

	assert.Equal(t, "2024", report[0].Label)
	assert.Equal(t, "2023", report[1].Label)
	assert.Equal(t, "2022", report[2].Label)

	assert.True(t, report[0].Total.Equal(decimal.RequireFromString("20")))
	assert.True(t, report[2].Total.Equal(decimal.RequireFromString("10")))
}

func TestBuildReportLabels(t *testing.T) {
	report := BuildReport(NewGrid[Bucket](1), 2025)
	require.Len(t, report, 1)

	year := report[0]
	assert.Equal(t, "Q1", year.Quarters[0].Label)
	assert.Equal(t, "Q4", year.Quarters[3].Label)
	assert.Equal(t, "Jan", year.Quarters[0].Months[0].Label)
	assert.Equal(t, "Sept", year.Quarters[2].Months[2].Label)
	assert.Equal(t, "Dec", year.Quarters[3].Months[2].Label)
}

func TestCollectWithCustomMerge(t *testing.T) {
	// max-accumulation instead of sum, to exercise the pluggable merge
	items := []Timed[int]{
		{Value: 3, Date: date(2026, time.March, 1)},
		{Value: 7, Date: date(2026, time.March, 20)},
		{Value: 5, Date: date(2026, time.March, 31)},
	}

	grid := Collect(items, 2026, 1, func(acc *int, v int) {
		if v > *acc {
			*acc = v
		}
	})

	assert.Equal(t, 7, grid[0][0][2])
}

func TestCollectDropsRecordsPastWindowEnd(t *testing.T) {
	records := []AmountAt{
		{Amount: decimal.RequireFromString("1"), Date: date(2027, time.January, 1)},
	}

	grid := CollectAmounts(records, 2022, 5)
	for _, yearGrid := range grid {
		for _, quarterGrid := range yearGrid {
			for _, cell := range quarterGrid {
				assert.Zero(t, cell.Count)
			}
		}
	}
}
