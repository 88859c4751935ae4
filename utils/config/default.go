package config

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"github.com/tsinghua-fib-lab/lifesim-oss/tax"
)

// Default 默认配置
// 说明：2002年出生，2025年起按8万年薪、2%涨薪、7%投资回报模拟到2102年
func Default() Config {
	return Config{
		Control: Control{
			BirthYear: 2002,
			StartYear: 2025,
			EndYear:   2102,
		},
		Scenario: Scenario{
			Income: Income{
				Starting: 80000,
				Growth:   1.02,
			},
			InvestmentReturn: 1.07,
			Tax: Tax{
				National: brackets(tax.DefaultNationalCutoffs, tax.DefaultNationalRates),
				Regional: brackets(tax.DefaultRegionalCutoffs, tax.DefaultRegionalRates),
			},
			Goals: Goals{
				{Name: "Wedding", Age: 30, TotalValue: 10000, DownPayment: 10000},
				{Name: "Children", Age: 37, TotalValue: 1080000, MonthlyPayment: 5000, LoanTerm: 18},
				{Name: finance.HomeGoal, Age: 35, TotalValue: 1000000, DownPayment: 100000, MonthlyPayment: 3000, LoanTerm: 30},
				{Name: finance.RetirementGoal, Age: 65, TotalValue: 2000000, MonthlyPayment: 2000000. / (35 * 12)},
				{Name: "Kid's College", Age: 40, TotalValue: 1000000, MonthlyPayment: 5000, LoanTerm: 4},
			},
			Expenses: Expenses{
				PreHome: map[string]float64{
					"Rent":           2000,
					"Food":           200,
					"Transportation": 100,
					"Recreation":     600,
					"Miscellaneous":  200,
				},
				PreRetirement: map[string]float64{
					"Rent":           0,
					"Food":           300,
					"Transportation": 200,
					"Recreation":     600,
					"Miscellaneous":  300,
				},
				Retired: map[string]float64{
					"Rent":           0,
					"Food":           400,
					"Transportation": 300,
					"Recreation":     600,
					"Miscellaneous":  400,
				},
			},
		},
	}
}

func brackets(cutoffs, rates []float64) []Bracket {
	return lo.Map(cutoffs, func(c float64, i int) Bracket {
		return Bracket{Threshold: c, Rate: rates[i]}
	})
}
