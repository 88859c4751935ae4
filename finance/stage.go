package finance

import (
	"slices"

	"github.com/samber/lo"
)

// Stage 人生阶段，决定基础月支出
type Stage int

const (
	StagePreHome       Stage = iota // 购房前
	StagePreRetirement              // 购房后、退休前
	StageRetired                    // 退休后
)

func (s Stage) String() string {
	switch s {
	case StagePreHome:
		return "pre-home"
	case StagePreRetirement:
		return "pre-retirement"
	case StageRetired:
		return "retired"
	}
	return "unknown"
}

// ClassifyStage 根据年龄判断所处人生阶段
// 参数：age-当前年龄，homeAge-购房年龄，retirementAge-退休年龄
// 返回：三个互斥阶段之一
func ClassifyStage(age, homeAge, retirementAge int) Stage {
	switch {
	case age < homeAge:
		return StagePreHome
	case age < retirementAge:
		return StagePreRetirement
	default:
		return StageRetired
	}
}

// ExpenseStage 某一人生阶段的月支出表（类别 -> 月支出）
type ExpenseStage struct {
	Name       string
	Categories map[string]float64
}

// Monthly 月支出合计
// 说明：按类别名排序后累加，保证浮点结果与map遍历顺序无关
func (e ExpenseStage) Monthly() float64 {
	keys := lo.Keys(e.Categories)
	slices.Sort(keys)
	return lo.SumBy(keys, func(k string) float64 {
		return e.Categories[k]
	})
}

// Annual 年支出合计
func (e ExpenseStage) Annual() float64 {
	return 12 * e.Monthly()
}

// Stages 按Stage下标排列的三个支出阶段
type Stages [3]ExpenseStage
