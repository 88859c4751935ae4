// 模拟结果的汇总与输出，供控制台和外部绘图程序使用
package report

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TickInterval 年龄刻度间隔（年）
const TickInterval = 5

var printer = message.NewPrinter(language.English)

// FormatCurrency 格式化金额，保留两位小数并带千分位，如 $1,234.56
func FormatCurrency(v float64) string {
	return "$" + printer.Sprintf("%.2f", v)
}

// Marker 目标在时间轴上的标记
type Marker struct {
	Name           string  `yaml:"name"`
	Year           int     `yaml:"year"`
	Age            int     `yaml:"age"`
	TotalValue     float64 `yaml:"total_value"`
	DownPayment    float64 `yaml:"down_payment"`
	MonthlyPayment float64 `yaml:"monthly_payment"`
	LoanTerm       int     `yaml:"loan_term"`
}

// Markers 按目标表顺序生成时间轴标记
func Markers(r finance.Result) []Marker {
	return lo.Map(r.Goals, func(g finance.Goal, _ int) Marker {
		return Marker{
			Name:           g.Name,
			Year:           g.Year(r.BirthYear),
			Age:            g.Age,
			TotalValue:     g.TotalValue,
			DownPayment:    g.DownPayment,
			MonthlyPayment: g.MonthlyPayment,
			LoanTerm:       g.LoanTerm,
		}
	})
}

// Tick 时间轴刻度
type Tick struct {
	Year int `yaml:"year"`
	Age  int `yaml:"age"`
}

// Ticks 从起始年开始每隔TickInterval年生成一个刻度
func Ticks(r finance.Result) []Tick {
	ticks := []Tick{}
	for year := r.StartYear; year < r.EndYear; year += TickInterval {
		ticks = append(ticks, Tick{Year: year, Age: r.Age(year)})
	}
	return ticks
}

// Summary 模拟结果汇总
type Summary struct {
	Years        int
	FinalBalance float64
	MinBalance   float64
	MinSavings   float64
	Solvent      bool // 每年余额都为正

	// 按分累计，避免浮点误差
	LifetimeIncome   decimal.Decimal
	LifetimeExpenses decimal.Decimal
	LifetimeSavings  decimal.Decimal
}

// Summarize 汇总模拟结果
func Summarize(r finance.Result) Summary {
	h := r.History
	s := Summary{
		Years:            h.Len(),
		LifetimeIncome:   sum(h.Incomes),
		LifetimeExpenses: sum(h.Expenses),
		LifetimeSavings:  sum(h.Savings),
	}
	if h.Len() == 0 {
		return s
	}
	s.FinalBalance, _ = r.FinalBalance()
	s.MinBalance = lo.Min(h.Balances)
	s.MinSavings = lo.Min(h.Savings)
	s.Solvent = s.MinBalance > 0
	return s
}

func sum(values []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2)
}

// Print 输出控制台汇总
func Print(w io.Writer, s Summary) error {
	if s.Years == 0 {
		_, err := fmt.Fprintln(w, "No years simulated")
		return err
	}
	status := "solvent"
	if !s.Solvent {
		status = "insolvent"
	}
	_, err := fmt.Fprintf(w,
		"Final Balance: %s\nLowest Balance: %s (%s over %d years)\nLifetime Income: %s\nLifetime Expenses: %s\nLifetime Savings: %s\n",
		FormatCurrency(s.FinalBalance),
		FormatCurrency(s.MinBalance), status, s.Years,
		FormatCurrency(s.LifetimeIncome.InexactFloat64()),
		FormatCurrency(s.LifetimeExpenses.InexactFloat64()),
		FormatCurrency(s.LifetimeSavings.InexactFloat64()),
	)
	return err
}
