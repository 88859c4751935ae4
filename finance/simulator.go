package finance

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lifesim-oss/clock"
)

var (
	ErrMissingGoal      = errors.New("finance: required goal missing")
	ErrDuplicateGoal    = errors.New("finance: duplicate goal name")
	ErrInvalidHorizon   = errors.New("finance: end year before start year")
	ErrNoTaxCalculator  = errors.New("finance: tax calculator is nil")
	ErrAlreadySimulated = errors.New("finance: life already simulated")
)

// TaxCalculator 按税前年收入计算总税额
type TaxCalculator interface {
	ComputeTax(gross float64) float64
}

// Params 模拟器的不可变参数
type Params struct {
	BirthYear int // 出生年份
	StartYear int // 起始年（含）
	EndYear   int // 结束年（不含）

	StartingIncome   float64 // 初始年收入
	IncomeGrowth     float64 // 年收入增长倍数
	InvestmentReturn float64 // 年投资回报倍数

	Tax    TaxCalculator
	Goals  []Goal // 按声明顺序排列
	Stages Stages
}

// State 模拟器的可变状态
// 说明：余额可以为负，不做下限截断
type State struct {
	Income    float64 // 当年年收入
	Balance   float64 // 当前余额
	IncomeTax float64 // 当年所得税
	Expenses  float64 // 当年总支出（含还款和所得税）
}

// YearHook 每年结算完成后的回调
type YearHook func(year int, state State)

// Option 模拟器选项
type Option func(*Simulator)

// WithYearHook 注册每年结算完成后的回调
func WithYearHook(hook YearHook) Option {
	return func(s *Simulator) {
		s.hooks = append(s.hooks, hook)
	}
}

// Simulator 个人一生财务模拟器
// 功能：逐年推进收入、税、支出、还款和投资复利，记录历史序列
// 说明：单线程使用，每年的结果依赖上一年的状态
type Simulator struct {
	params Params
	clock  *clock.Clock

	home       Goal
	retirement Goal

	state     State
	history   History
	hooks     []YearHook
	simulated bool
}

// NewSimulator 创建模拟器
// 功能：校验参数并初始化状态
// 参数：params-模拟参数，opts-可选项
// 返回：模拟器实例或配置错误
// 算法说明：
// 1. 检查税计算器、模拟区间、目标名唯一性
// 2. 查找购房和退休两个必需目标
// 3. 初始状态：收入为初始收入，余额为0，支出为购房前阶段的年支出
func NewSimulator(params Params, opts ...Option) (*Simulator, error) {
	if params.Tax == nil {
		return nil, ErrNoTaxCalculator
	}
	if params.EndYear < params.StartYear {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidHorizon, params.StartYear, params.EndYear)
	}
	names := lo.Map(params.Goals, func(g Goal, _ int) string { return g.Name })
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateGoal, dup)
	}
	home, ok := lo.Find(params.Goals, func(g Goal) bool { return g.Name == HomeGoal })
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingGoal, HomeGoal)
	}
	retirement, ok := lo.Find(params.Goals, func(g Goal) bool { return g.Name == RetirementGoal })
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingGoal, RetirementGoal)
	}
	params.Goals = append([]Goal(nil), params.Goals...)

	s := &Simulator{
		params:     params,
		clock:      clock.New(params.StartYear, params.EndYear),
		home:       home,
		retirement: retirement,
		state: State{
			Income:   params.StartingIncome,
			Expenses: params.Stages[StagePreHome].Annual(),
		},
	}
	s.history = newHistory(s.clock.Years())
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// UpdateIncomeAndExpenses 更新当年收入和支出
// 功能：计算指定年份的收入、所得税和总支出
// 参数：year-当前年份
// 算法说明：
// 1. 收入按增长倍数增长
// 2. 用增长后的收入计算所得税
// 3. 达到退休年龄后收入归零（所得税仍按增长后的收入计入当年支出）
// 4. 按人生阶段取基础年支出
// 5. 加上所有还款中目标的年还款
// 6. 所得税计入支出
func (s *Simulator) UpdateIncomeAndExpenses(year int) {
	age := year - s.params.BirthYear

	s.state.Income *= s.params.IncomeGrowth
	s.state.IncomeTax = s.params.Tax.ComputeTax(s.state.Income)
	if age >= s.retirement.Age {
		s.state.Income = 0
	}

	stage := ClassifyStage(age, s.home.Age, s.retirement.Age)
	s.state.Expenses = s.params.Stages[stage].Annual()
	s.state.Expenses += LoanPayments(s.params.Goals, age)
	s.state.Expenses += s.state.IncomeTax
}

// UpdateYearlyBalance 结算当年余额并记录历史
// 说明：储蓄计入余额后整体按投资回报复利，负余额同样复利
func (s *Simulator) UpdateYearlyBalance() {
	savings := s.state.Income - s.state.Expenses
	s.state.Balance += savings
	s.state.Balance *= s.params.InvestmentReturn
	s.history.append(s.state.Expenses, s.state.Income, s.state.Balance, savings)
}

// SimulateLife 按年走完整个模拟区间
// 说明：每个模拟器只能运行一次，状态不会重置
func (s *Simulator) SimulateLife() error {
	if s.simulated {
		return ErrAlreadySimulated
	}
	s.simulated = true
	for s.clock.Init(); !s.clock.Done(); s.clock.Next() {
		year := s.clock.Year
		s.UpdateIncomeAndExpenses(year)
		s.UpdateYearlyBalance()
		log.Debugf("%v: age %d income %.2f tax %.2f expenses %.2f balance %.2f",
			s.clock, s.clock.Age(s.params.BirthYear),
			s.state.Income, s.state.IncomeTax, s.state.Expenses, s.state.Balance)
		for _, hook := range s.hooks {
			hook(year, s.state)
		}
	}
	return nil
}

// State 当前状态
func (s *Simulator) State() State {
	return s.state
}

// History 历史序列的拷贝
func (s *Simulator) History() History {
	return s.history.Clone()
}

// Result 输出给展示层的结果
func (s *Simulator) Result() Result {
	return Result{
		BirthYear: s.params.BirthYear,
		StartYear: s.params.StartYear,
		EndYear:   s.params.EndYear,
		Goals:     append([]Goal(nil), s.params.Goals...),
		History:   s.History(),
	}
}
