package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lifesim-oss/tax"
)

func ptr(v float64) *float64 {
	return &v
}

func TestDefaultCalculator(t *testing.T) {
	c := tax.DefaultCalculator()
	cases := []struct {
		name  string
		gross float64
		want  float64
	}{
		{"zero", 0, 0},
		{"below both first thresholds", 5000, 0},
		{"only regional first bracket", 9000, 90},
		{"exactly at national threshold", 9875, 0.01 * 9875},
		{"first grown salary", 81600, 0.12*81600 + 0.08*81600},
		{"top brackets", 2000000, 0.35*2000000 + 0.123*2000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, c.ComputeTax(tc.gross), 1e-6)
		})
	}
}

func TestComputeTaxNeverNegative(t *testing.T) {
	c := tax.DefaultCalculator()
	for gross := 0.; gross < 2e6; gross += 997 {
		assert.GreaterOrEqual(t, c.ComputeTax(gross), 0.)
	}
}

func TestComputeTaxLinearWithinRegion(t *testing.T) {
	c := tax.DefaultCalculator()
	// 60000和80000命中相同的最高档（国家0.12，地区0.08）
	low, high := c.ComputeTax(60000), c.ComputeTax(80000)
	assert.InDelta(t, 0.2*60000, low, 1e-6)
	assert.InDelta(t, 0.2*80000, high, 1e-6)
	assert.InDelta(t, high/80000, low/60000, 1e-12)
}

func TestScheduleZeroFirstThreshold(t *testing.T) {
	s, err := tax.NewSchedule("flat", []float64{0, 100}, []float64{0.1, 0.2})
	require.NoError(t, err)
	assert.Equal(t, 0., s.Due(0))
	assert.InDelta(t, 5., s.Due(50), 1e-9)
	assert.InDelta(t, 40., s.Due(200), 1e-9)
}

func TestScheduleCumulative(t *testing.T) {
	s := tax.Schedule{
		Name: "regional",
		Brackets: []tax.Bracket{
			{Threshold: 0, Rate: 0.1, Base: ptr(0)},
			{Threshold: 10000, Rate: 0.2, Base: ptr(1000)},
		},
	}
	require.NoError(t, s.Validate())
	assert.True(t, s.Cumulative())
	assert.Equal(t, 0., s.Due(0))
	assert.InDelta(t, 500., s.Due(5000), 1e-9)
	assert.InDelta(t, 2000., s.Due(15000), 1e-9)
}

func TestWithCumulativeBases(t *testing.T) {
	flat, err := tax.NewSchedule("national", tax.DefaultNationalCutoffs, tax.DefaultNationalRates)
	require.NoError(t, err)
	s := tax.WithCumulativeBases(flat)
	require.NoError(t, s.Validate())
	assert.False(t, flat.Cumulative())
	assert.InDelta(t, 0.10*(40125-9875)+0.12*(81600-40125), s.Due(81600), 1e-6)
	assert.Equal(t, 0., s.Due(9875))
}

func TestScheduleValidate(t *testing.T) {
	cases := []struct {
		name     string
		brackets []tax.Bracket
	}{
		{"empty", nil},
		{"negative first threshold", []tax.Bracket{{Threshold: -1, Rate: 0.1}}},
		{"not increasing", []tax.Bracket{{Threshold: 10, Rate: 0.1}, {Threshold: 10, Rate: 0.2}}},
		{"negative rate", []tax.Bracket{{Threshold: 0, Rate: -0.1}}},
		{"mixed bases", []tax.Bracket{{Threshold: 0, Rate: 0.1, Base: ptr(0)}, {Threshold: 10, Rate: 0.2}}},
		{"negative base", []tax.Bracket{{Threshold: 0, Rate: 0.1, Base: ptr(-1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tax.Schedule{Name: tc.name, Brackets: tc.brackets}.Validate()
			assert.ErrorIs(t, err, tax.ErrInvalidSchedule)
		})
	}
}

func TestNewScheduleLengthMismatch(t *testing.T) {
	_, err := tax.NewSchedule("national", []float64{0, 10}, []float64{0.1})
	assert.ErrorIs(t, err, tax.ErrInvalidSchedule)
}

func TestNewCalculatorRejectsInvalid(t *testing.T) {
	good, err := tax.NewSchedule("good", []float64{0}, []float64{0.1})
	require.NoError(t, err)
	_, err = tax.NewCalculator(good, tax.Schedule{Name: "bad"})
	assert.ErrorIs(t, err, tax.ErrInvalidSchedule)
}
