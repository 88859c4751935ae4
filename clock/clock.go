package clock

import (
	"fmt"
)

// Clock 仿真年份时钟
// 功能：管理按年推进的仿真时间
// 说明：模拟区间为[START_YEAR, END_YEAR)，每步推进一年
type Clock struct {
	START_YEAR int // 起始年
	END_YEAR   int // 结束年，模拟区间[START, END)

	Year int // 当前年份
}

// New 根据起止年份创建新的时钟实例
// 功能：初始化时钟区间并将当前年份置于起始年
// 参数：startYear-起始年（含），endYear-结束年（不含）
// 返回：初始化完成的时钟实例
func New(startYear, endYear int) *Clock {
	c := &Clock{
		START_YEAR: startYear,
		END_YEAR:   endYear,
	}
	c.Init()
	return c
}

// Init 重置当前年份为起始年
func (c *Clock) Init() {
	c.Year = c.START_YEAR
}

// Next 推进一年
func (c *Clock) Next() {
	c.Year++
}

// Done 是否已经走完整个区间
func (c *Clock) Done() bool {
	return c.Year >= c.END_YEAR
}

// Years 区间包含的年数，区间为空时为0
func (c *Clock) Years() int {
	return max(c.END_YEAR-c.START_YEAR, 0)
}

// Index 当前年份在区间内的下标（year - START_YEAR）
func (c *Clock) Index() int {
	return c.Year - c.START_YEAR
}

// Age 当前年份对应的年龄
// 参数：birthYear-出生年份
// 返回：当前年份与出生年份之差
func (c *Clock) Age(birthYear int) int {
	return c.Year - birthYear
}

// String 获取时钟的字符串表示，格式为 "年份 (已走步数/总步数)"
func (c *Clock) String() string {
	return fmt.Sprintf("%d (%d/%d)", c.Year, c.Index()+1, c.Years())
}
