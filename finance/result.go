package finance

// Result 模拟结果
// 功能：提供给展示层的纯数据，包含四个历史序列、目标表和出生年份
type Result struct {
	BirthYear int
	StartYear int
	EndYear   int
	Goals     []Goal
	History   History
}

// Years 历史序列每个下标对应的年份
func (r Result) Years() []int {
	years := make([]int, r.History.Len())
	for i := range years {
		years[i] = r.StartYear + i
	}
	return years
}

// Age 年份对应的年龄
func (r Result) Age(year int) int {
	return year - r.BirthYear
}

// FinalBalance 最后一年的余额，区间为空时ok为false
func (r Result) FinalBalance() (balance float64, ok bool) {
	n := r.History.Len()
	if n == 0 {
		return 0, false
	}
	return r.History.Balances[n-1], true
}
