package report

import (
	"io"

	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"gopkg.in/yaml.v2"
)

// Document 导出给外部绘图程序的结果文档
type Document struct {
	BirthYear int       `yaml:"birth_year"`
	StartYear int       `yaml:"start_year"`
	EndYear   int       `yaml:"end_year"`
	Years     []int     `yaml:"years"`
	Balances  []float64 `yaml:"balances"`
	Expenses  []float64 `yaml:"expenses"`
	Incomes   []float64 `yaml:"incomes"`
	Savings   []float64 `yaml:"savings"`
	Goals     []Marker  `yaml:"goals"`
	Ticks     []Tick    `yaml:"ticks"`
	Solvent   bool      `yaml:"solvent"`
}

// NewDocument 根据模拟结果构建导出文档
func NewDocument(r finance.Result) Document {
	h := r.History
	return Document{
		BirthYear: r.BirthYear,
		StartYear: r.StartYear,
		EndYear:   r.EndYear,
		Years:     r.Years(),
		Balances:  h.Balances,
		Expenses:  h.Expenses,
		Incomes:   h.Incomes,
		Savings:   h.Savings,
		Goals:     Markers(r),
		Ticks:     Ticks(r),
		Solvent:   Summarize(r).Solvent,
	}
}

// WriteYAML 以YAML格式写出模拟结果
func WriteYAML(w io.Writer, r finance.Result) error {
	out, err := yaml.Marshal(NewDocument(r))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
