package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"github.com/tsinghua-fib-lab/lifesim-oss/tax"
)

// RuntimeConfig 运行时配置
// 功能：将YAML配置转换为模拟器可直接使用的不可变参数
type RuntimeConfig struct {
	All    Config         // 全部配置
	C      Control        // 模拟时间范围
	Params finance.Params // 模拟器参数
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：构建税表、目标表和支出阶段
// 参数：config-原始配置对象
// 返回：运行时配置指针或配置错误
// 算法说明：
// 1. 构建并校验国家、地区税表，按需为地区税表补齐累计基数
// 2. 按声明顺序转换目标表
// 3. 转换三个支出阶段
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	calculator, err := newCalculator(config.Scenario.Tax)
	if err != nil {
		return nil, err
	}
	s := config.Scenario
	rc := &RuntimeConfig{
		All: config,
		C:   config.Control,
		Params: finance.Params{
			BirthYear:        config.Control.BirthYear,
			StartYear:        config.Control.StartYear,
			EndYear:          config.Control.EndYear,
			StartingIncome:   s.Income.Starting,
			IncomeGrowth:     s.Income.Growth,
			InvestmentReturn: s.InvestmentReturn,
			Tax:              calculator,
			Goals: lo.Map(s.Goals, func(g Goal, _ int) finance.Goal {
				return finance.Goal{
					Name:           g.Name,
					Age:            g.Age,
					TotalValue:     g.TotalValue,
					DownPayment:    g.DownPayment,
					MonthlyPayment: g.MonthlyPayment,
					LoanTerm:       g.LoanTerm,
				}
			}),
			Stages: finance.Stages{
				finance.StagePreHome:       {Name: finance.StagePreHome.String(), Categories: s.Expenses.PreHome},
				finance.StagePreRetirement: {Name: finance.StagePreRetirement.String(), Categories: s.Expenses.PreRetirement},
				finance.StageRetired:       {Name: finance.StageRetired.String(), Categories: s.Expenses.Retired},
			},
		},
	}
	return rc, nil
}

func newCalculator(c Tax) (tax.Calculator, error) {
	national := newSchedule("national", c.National)
	regional := newSchedule("regional", c.Regional)
	if c.RegionalCumulative && !regional.Cumulative() {
		if err := regional.Validate(); err != nil {
			return tax.Calculator{}, fmt.Errorf("tax config: %w", err)
		}
		regional = tax.WithCumulativeBases(regional)
	}
	calculator, err := tax.NewCalculator(national, regional)
	if err != nil {
		return tax.Calculator{}, fmt.Errorf("tax config: %w", err)
	}
	return calculator, nil
}

func newSchedule(name string, brackets []Bracket) tax.Schedule {
	return tax.Schedule{
		Name: name,
		Brackets: lo.Map(brackets, func(b Bracket, _ int) tax.Bracket {
			return tax.Bracket{Threshold: b.Threshold, Rate: b.Rate, Base: b.Base}
		}),
	}
}
