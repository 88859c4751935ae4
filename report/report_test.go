package report_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"github.com/tsinghua-fib-lab/lifesim-oss/report"
	"gopkg.in/yaml.v2"
)

func sampleResult() finance.Result {
	return finance.Result{
		BirthYear: 2000,
		StartYear: 2025,
		EndYear:   2037,
		Goals: []finance.Goal{
			{Name: finance.HomeGoal, Age: 30, TotalValue: 500000, DownPayment: 50000, MonthlyPayment: 2000, LoanTerm: 30},
			{Name: finance.RetirementGoal, Age: 60},
		},
		History: finance.History{
			Balances: []float64{100, -50, 25.5},
			Expenses: []float64{900, 1150, 924.5},
			Incomes:  []float64{1000, 1000, 1000},
			Savings:  []float64{100, -150, 75.5},
		},
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", report.FormatCurrency(0))
	assert.Equal(t, "$999.50", report.FormatCurrency(999.5))
	assert.Equal(t, "$1,234,567.89", report.FormatCurrency(1234567.891))
	assert.Equal(t, "$-24,000.00", report.FormatCurrency(-24000))
}

func TestMarkersAndTicks(t *testing.T) {
	r := sampleResult()
	markers := report.Markers(r)
	require.Len(t, markers, 2)
	assert.Equal(t, "Home", markers[0].Name)
	assert.Equal(t, 2030, markers[0].Year)
	assert.Equal(t, 50000., markers[0].DownPayment)
	assert.Equal(t, 2060, markers[1].Year)

	assert.Equal(t, []report.Tick{
		{Year: 2025, Age: 25},
		{Year: 2030, Age: 30},
		{Year: 2035, Age: 35},
	}, report.Ticks(r))
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sampleResult())
	assert.Equal(t, 3, s.Years)
	assert.Equal(t, 25.5, s.FinalBalance)
	assert.Equal(t, -50., s.MinBalance)
	assert.Equal(t, -150., s.MinSavings)
	assert.False(t, s.Solvent)
	assert.True(t, decimal.NewFromInt(3000).Equal(s.LifetimeIncome))
	assert.True(t, decimal.NewFromFloat(2974.5).Equal(s.LifetimeExpenses))
	assert.True(t, decimal.NewFromFloat(25.5).Equal(s.LifetimeSavings))

	empty := report.Summarize(finance.Result{StartYear: 2025, EndYear: 2025})
	assert.Equal(t, 0, empty.Years)
	assert.True(t, empty.LifetimeIncome.IsZero())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf, report.Summarize(sampleResult())))
	out := buf.String()
	assert.Contains(t, out, "Final Balance: $25.50\n")
	assert.Contains(t, out, "Lowest Balance: $-50.00 (insolvent over 3 years)")
	assert.Contains(t, out, "Lifetime Income: $3,000.00")

	buf.Reset()
	require.NoError(t, report.Print(&buf, report.Summary{}))
	assert.Equal(t, "No years simulated\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, sampleResult()))

	var doc report.Document
	require.NoError(t, yaml.UnmarshalStrict(buf.Bytes(), &doc))
	assert.Equal(t, []int{2025, 2026, 2027}, doc.Years)
	assert.Equal(t, []float64{100, -50, 25.5}, doc.Balances)
	assert.Len(t, doc.Goals, 2)
	assert.Len(t, doc.Ticks, 3)
	assert.False(t, doc.Solvent)
}
