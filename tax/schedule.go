package tax

import (
	"errors"
	"fmt"
)

// ErrInvalidSchedule 税表配置错误
var ErrInvalidSchedule = errors.New("tax: invalid schedule")

// Bracket 税率档位
// 功能：描述一个切分点及其税率，可选附带该档位的累计基数
// 说明：Base为nil时按整笔收入乘以税率计税；非nil时按 Base + Rate*(收入-切分点) 计税
type Bracket struct {
	Threshold float64  // 切分点，收入严格超过该值时命中本档
	Rate      float64  // 税率
	Base      *float64 // 累计基数（可选）
}

// Schedule 一张完整的税表
type Schedule struct {
	Name     string
	Brackets []Bracket
}

// NewSchedule 根据切分点和税率创建不带累计基数的税表
// 功能：将并列的切分点、税率数组配对为档位
// 参数：name-税表名，cutoffs-切分点，rates-税率
// 返回：校验通过的税表或错误
func NewSchedule(name string, cutoffs []float64, rates []float64) (Schedule, error) {
	if len(cutoffs) != len(rates) {
		return Schedule{}, fmt.Errorf("%w: %s: %d cutoffs but %d rates", ErrInvalidSchedule, name, len(cutoffs), len(rates))
	}
	s := Schedule{Name: name, Brackets: make([]Bracket, len(cutoffs))}
	for i := range cutoffs {
		s.Brackets[i] = Bracket{Threshold: cutoffs[i], Rate: rates[i]}
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// Cumulative 税表是否为累计基数形式
func (s Schedule) Cumulative() bool {
	return len(s.Brackets) > 0 && s.Brackets[0].Base != nil
}

// Validate 校验税表
// 功能：检查档位的合法性
// 算法说明：
// 1. 税表不能为空
// 2. 第一个切分点不能为负，切分点严格递增
// 3. 税率、累计基数不能为负
// 4. 累计基数要么全部提供，要么全部缺省
func (s Schedule) Validate() error {
	if len(s.Brackets) == 0 {
		return fmt.Errorf("%w: %s: no brackets", ErrInvalidSchedule, s.Name)
	}
	if s.Brackets[0].Threshold < 0 {
		return fmt.Errorf("%w: %s: negative first threshold %v", ErrInvalidSchedule, s.Name, s.Brackets[0].Threshold)
	}
	cumulative := s.Cumulative()
	for i, b := range s.Brackets {
		if i > 0 && b.Threshold <= s.Brackets[i-1].Threshold {
			return fmt.Errorf("%w: %s: threshold %v at %d is not above %v", ErrInvalidSchedule, s.Name, b.Threshold, i, s.Brackets[i-1].Threshold)
		}
		if b.Rate < 0 {
			return fmt.Errorf("%w: %s: negative rate %v at %d", ErrInvalidSchedule, s.Name, b.Rate, i)
		}
		if (b.Base != nil) != cumulative {
			return fmt.Errorf("%w: %s: cumulative base must be set on all brackets or none", ErrInvalidSchedule, s.Name)
		}
		if b.Base != nil && *b.Base < 0 {
			return fmt.Errorf("%w: %s: negative base %v at %d", ErrInvalidSchedule, s.Name, *b.Base, i)
		}
	}
	return nil
}

// Due 计算指定收入水平在本税表下的应缴税额
// 功能：从低到高扫描档位，每命中一档就用该档的结果覆盖之前的税额
// 参数：gross-税前年收入
// 返回：应缴税额
// 说明：最终只有命中的最高档生效。无累计基数时该档税率作用于全部收入，
// 并非逐档累进；收入不超过第一个切分点时税额为0
func (s Schedule) Due(gross float64) float64 {
	var due float64
	for _, b := range s.Brackets {
		if gross > b.Threshold {
			if b.Base != nil {
				due = *b.Base + b.Rate*(gross-b.Threshold)
			} else {
				due = b.Rate * gross
			}
		}
	}
	return due
}

// WithCumulativeBases 为税表补齐累计基数
// 功能：基数取前面各档按边际税率计得的税额之和，使 Due 成为逐档累进计算
// 返回：新的累计基数形式税表，原税表不变
func WithCumulativeBases(s Schedule) Schedule {
	out := Schedule{Name: s.Name, Brackets: make([]Bracket, len(s.Brackets))}
	base := 0.
	for i, b := range s.Brackets {
		if i > 0 {
			prev := s.Brackets[i-1]
			base += prev.Rate * (b.Threshold - prev.Threshold)
		}
		v := base
		out.Brackets[i] = Bracket{Threshold: b.Threshold, Rate: b.Rate, Base: &v}
	}
	return out
}
