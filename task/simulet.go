package task

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"github.com/tsinghua-fib-lab/lifesim-oss/report"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 10, "心跳日志间隔年数")
)

// heartbeat 每年结算后调用，定期输出状态
func (ctx *Context) heartbeat(year int, state finance.State) {
	c := ctx.runtimeConfig.C
	interval := max(*heartBeatInterval, 1)
	if (year-c.StartYear)%interval != 0 && year+1 != c.EndYear {
		return
	}
	log.Infof(
		"YEAR: %d(age %d) income %s expenses %s balance %s",
		year, year-c.BirthYear,
		report.FormatCurrency(state.Income),
		report.FormatCurrency(state.Expenses),
		report.FormatCurrency(state.Balance),
	)
}

// Run 运行
// 功能：完成整个模拟区间，输出汇总并按需导出结果
// 参数：w-控制台汇总输出
// 说明：模拟出错时不产生任何输出
func (ctx *Context) Run(w io.Writer) error {
	c := ctx.runtimeConfig.C
	log.Infof("job %s: simulate [%d, %d), born %d", ctx.job, c.StartYear, c.EndYear, c.BirthYear)
	if err := ctx.simulator.SimulateLife(); err != nil {
		return err
	}
	log.Infof("engine complete")

	result := ctx.simulator.Result()
	if err := report.Print(w, report.Summarize(result)); err != nil {
		return err
	}
	if ctx.output == "" {
		return nil
	}
	f, err := os.Create(ctx.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := report.WriteYAML(f, result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Infof("result written to %s", ctx.output)
	return nil
}
