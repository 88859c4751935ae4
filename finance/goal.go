package finance

// 模拟器依赖的两个特殊目标，分别决定支出阶段切换和退休时间
const (
	HomeGoal       = "Home"
	RetirementGoal = "Retirement"
)

// Goal 人生目标
// 功能：描述一次在指定年龄触发的人生事件及其贷款还款计划
// 说明：首付款只作描述用途，模拟过程中不会从余额中扣除
type Goal struct {
	Name           string  // 目标名，唯一
	Age            int     // 触发年龄
	TotalValue     float64 // 总价值
	DownPayment    float64 // 首付
	MonthlyPayment float64 // 月供
	LoanTerm       int     // 贷款年限
}

// GoalState 目标在某一年龄下所处的阶段
type GoalState int

const (
	GoalDormant GoalState = iota // 尚未触发
	GoalActive                   // 还款中
	GoalRetired                  // 已还清或从未进入还款
)

func (s GoalState) String() string {
	switch s {
	case GoalDormant:
		return "dormant"
	case GoalActive:
		return "active"
	case GoalRetired:
		return "retired"
	}
	return "unknown"
}

// IsActive 目标在该年龄是否处于还款区间[Age, Age+LoanTerm)
// 说明：LoanTerm为0的目标永远不会进入还款
func (g Goal) IsActive(age int) bool {
	return g.Age <= age && g.LoanTerm > age-g.Age
}

// State 目标在该年龄所处的阶段
func (g Goal) State(age int) GoalState {
	switch {
	case age < g.Age:
		return GoalDormant
	case g.IsActive(age):
		return GoalActive
	default:
		return GoalRetired
	}
}

// AnnualPayment 年还款额
func (g Goal) AnnualPayment() float64 {
	return g.MonthlyPayment * 12
}

// Year 目标触发的年份
func (g Goal) Year(birthYear int) int {
	return birthYear + g.Age
}

// LoanPayments 计算该年龄下所有还款中目标的年还款总额
// 说明：按goals给定的顺序累加，多个目标同时还款时叠加
func LoanPayments(goals []Goal, age int) float64 {
	payments := 0.
	for _, g := range goals {
		if g.IsActive(age) {
			payments += g.AnnualPayment()
		}
	}
	return payments
}
