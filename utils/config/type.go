package config

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// InputPath 指定从MongoDB读取场景的配置
// 功能：定义场景文档的位置，支持本地缓存
// 说明：文档以name字段区分，文档其余字段与Scenario一致
type InputPath struct {
	URI       string `yaml:"uri"`                  // MongoDB连接字符串
	DB        string `yaml:"db"`                   // 数据库名
	Col       string `yaml:"col"`                  // 集合名
	Name      string `yaml:"name"`                 // 场景名
	Cache     string `yaml:"cache,omitempty"`      // 缓存文件名，为空则采用默认路径{db}.{col}.{name}.yml
	OnlyCache bool   `yaml:"only_cache,omitempty"` // 只从缓存中获取
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// GetCachePath 获取缓存文件路径
// 说明：如果指定了缓存路径直接返回，否则使用默认命名规则{数据库名}.{集合名}.{场景名}.yml
func (p InputPath) GetCachePath() string {
	if p.Cache != "" {
		return p.Cache
	}
	return p.DB + "." + p.Col + "." + p.Name + ".yml"
}

// Control 模拟时间范围
// 说明：模拟区间为[StartYear, EndYear)
type Control struct {
	BirthYear int `yaml:"birth_year"` // 出生年份
	StartYear int `yaml:"start_year"` // 起始年
	EndYear   int `yaml:"end_year"`   // 结束年（不含）
}

// Income 收入配置
type Income struct {
	Starting float64 `yaml:"starting" bson:"starting"` // 初始年收入
	Growth   float64 `yaml:"growth" bson:"growth"`     // 年增长倍数，如1.02
}

// Bracket 税率档位
type Bracket struct {
	Threshold float64  `yaml:"threshold" bson:"threshold"`
	Rate      float64  `yaml:"rate" bson:"rate"`
	Base      *float64 `yaml:"base,omitempty" bson:"base,omitempty"` // 累计基数，可选
}

// Tax 税表配置
type Tax struct {
	National []Bracket `yaml:"national" bson:"national"`
	Regional []Bracket `yaml:"regional" bson:"regional"`
	// 地区税表未给出累计基数时自动按边际税率补齐
	RegionalCumulative bool `yaml:"regional_cumulative,omitempty" bson:"regional_cumulative,omitempty"`
}

// Goal 人生目标
// 说明：YAML中以目标名为键，BSON中以name字段保存
type Goal struct {
	Name           string  `yaml:"-" bson:"name"`
	Age            int     `yaml:"age" bson:"age"`
	TotalValue     float64 `yaml:"total_value" bson:"total_value"`
	DownPayment    float64 `yaml:"down_payment" bson:"down_payment"`
	MonthlyPayment float64 `yaml:"monthly_payment" bson:"monthly_payment"`
	LoanTerm       int     `yaml:"loan_term" bson:"loan_term"`
}

// Goals 按声明顺序排列的目标表
type Goals []Goal

// UnmarshalYAML 从YAML映射中读取目标表并保留声明顺序
func (g *Goals) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items yaml.MapSlice
	if err := unmarshal(&items); err != nil {
		return err
	}
	goals := make(Goals, 0, len(items))
	for _, item := range items {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("goal name must be a string, got %v", item.Key)
		}
		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return fmt.Errorf("goal %s: %w", name, err)
		}
		var goal Goal
		if err := yaml.UnmarshalStrict(raw, &goal); err != nil {
			return fmt.Errorf("goal %s: %w", name, err)
		}
		goal.Name = name
		goals = append(goals, goal)
	}
	*g = goals
	return nil
}

// MarshalYAML 以目标名为键输出目标表
func (g Goals) MarshalYAML() (interface{}, error) {
	items := make(yaml.MapSlice, 0, len(g))
	for _, goal := range g {
		items = append(items, yaml.MapItem{Key: goal.Name, Value: goal})
	}
	return items, nil
}

// Expenses 三个人生阶段的月支出表（类别 -> 月支出）
type Expenses struct {
	PreHome       map[string]float64 `yaml:"pre_home" bson:"pre_home"`             // 购房前
	PreRetirement map[string]float64 `yaml:"pre_retirement" bson:"pre_retirement"` // 购房后、退休前
	Retired       map[string]float64 `yaml:"retired" bson:"retired"`               // 退休后
}

// Scenario 财务场景
// 功能：模拟所需的全部财务参数，可写在YAML中或从MongoDB读取
type Scenario struct {
	Income           Income   `yaml:"income" bson:"income"`
	InvestmentReturn float64  `yaml:"investment_return" bson:"investment_return"` // 年投资回报倍数，如1.07
	Tax              Tax      `yaml:"tax" bson:"tax"`
	Goals            Goals    `yaml:"goals" bson:"goals"`
	Expenses         Expenses `yaml:"expenses" bson:"expenses"`
}

// Config YAML配置文件的根结构
type Config struct {
	Input    *InputPath `yaml:"input,omitempty"` // 场景来源，为空则使用scenario
	Control  Control    `yaml:"control"`         // 模拟时间范围
	Scenario Scenario   `yaml:"scenario"`        // 财务场景
}
