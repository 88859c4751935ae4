package tax

// Calculator 个人所得税计算器
// 功能：叠加国家税表和地区税表计算总税额
// 说明：无内部状态，可并发使用
type Calculator struct {
	National Schedule
	Regional Schedule
}

// NewCalculator 创建计算器并校验两张税表
func NewCalculator(national, regional Schedule) (Calculator, error) {
	if err := national.Validate(); err != nil {
		return Calculator{}, err
	}
	if err := regional.Validate(); err != nil {
		return Calculator{}, err
	}
	return Calculator{National: national, Regional: regional}, nil
}

// ComputeTax 计算税前年收入对应的总税额（国家税 + 地区税）
func (c Calculator) ComputeTax(gross float64) float64 {
	return c.National.Due(gross) + c.Regional.Due(gross)
}
