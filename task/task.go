package task

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lifesim-oss/finance"
	"github.com/tsinghua-fib-lab/lifesim-oss/utils/config"
)

var log = logrus.WithField("module", "task")

// Context 模拟任务上下文
// 功能：包含一次模拟任务的配置、模拟器和输出设置
type Context struct {
	// 任务名
	job string

	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 模拟器
	simulator *finance.Simulator
	// 结果导出路径，为空则不导出
	output string
}

// NewContext 创建新的模拟任务上下文
// 功能：将配置转换为运行时配置并创建模拟器
// 参数：
//   - job: 任务名称
//   - c: 配置对象
//   - output: 结果导出路径
//
// 返回：初始化完成的Context实例或配置错误
func NewContext(job string, c config.Config, output string) (*Context, error) {
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	ctx := &Context{
		job:           job,
		runtimeConfig: rc,
		output:        output,
	}
	ctx.simulator, err = finance.NewSimulator(rc.Params, finance.WithYearHook(ctx.heartbeat))
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	return ctx, nil
}

func (ctx *Context) Job() string {
	return ctx.job
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Simulator() *finance.Simulator {
	return ctx.simulator
}
