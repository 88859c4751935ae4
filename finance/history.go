package finance

// History 逐年记录的模拟结果
// 说明：四个序列等长，下标为 year - StartYear
type History struct {
	Balances []float64
	Expenses []float64
	Incomes  []float64
	Savings  []float64
}

func newHistory(years int) History {
	return History{
		Balances: make([]float64, 0, years),
		Expenses: make([]float64, 0, years),
		Incomes:  make([]float64, 0, years),
		Savings:  make([]float64, 0, years),
	}
}

func (h *History) append(expenses, income, balance, savings float64) {
	h.Expenses = append(h.Expenses, expenses)
	h.Incomes = append(h.Incomes, income)
	h.Balances = append(h.Balances, balance)
	h.Savings = append(h.Savings, savings)
}

// Len 已记录的年数
func (h History) Len() int {
	return len(h.Balances)
}

// Clone 深拷贝
func (h History) Clone() History {
	return History{
		Balances: append([]float64(nil), h.Balances...),
		Expenses: append([]float64(nil), h.Expenses...),
		Incomes:  append([]float64(nil), h.Incomes...),
		Savings:  append([]float64(nil), h.Savings...),
	}
}
