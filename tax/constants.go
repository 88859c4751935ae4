package tax

// 默认税率档位和切分点（年收入）
var (
	// DefaultNationalCutoffs 联邦税切分点
	// 说明：原表有7档税率但只有6个切分点，最高档0.37从未生效，这里按实际生效的6档配对
	DefaultNationalCutoffs = []float64{9875, 40125, 85525, 163300, 207350, 518400}

	// DefaultNationalRates 联邦税率
	DefaultNationalRates = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35}

	// DefaultRegionalCutoffs 加州州税切分点
	DefaultRegionalCutoffs = []float64{8544, 20255, 31969, 44377, 56085, 286492, 343788, 572980, 1000000}

	// DefaultRegionalRates 加州州税率
	DefaultRegionalRates = []float64{0.01, 0.02, 0.04, 0.06, 0.08, 0.093, 0.103, 0.113, 0.123}
)

// DefaultCalculator 使用默认税表构建计算器
func DefaultCalculator() Calculator {
	national, err := NewSchedule("national", DefaultNationalCutoffs, DefaultNationalRates)
	if err != nil {
		log.Panicf("default national schedule: %v", err)
	}
	regional, err := NewSchedule("regional", DefaultRegionalCutoffs, DefaultRegionalRates)
	if err != nil {
		log.Panicf("default regional schedule: %v", err)
	}
	return Calculator{National: national, Regional: regional}
}
