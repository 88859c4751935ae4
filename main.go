package main

import (
	"context"
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lifesim-oss/task"
	"github.com/tsinghua-fib-lab/lifesim-oss/utils/config"
	"github.com/tsinghua-fib-lab/lifesim-oss/utils/input"
	"gopkg.in/yaml.v2"
)

var (
	// 模拟任务名，用于日志
	job = flag.String("job", "job0", "the name of the simulation task")
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 使用内置默认配置
	useDefault = flag.Bool("default", false, "use the built-in default config")
	// 打印内置默认配置后退出
	printDefault = flag.Bool("print-default", false, "print the built-in default config as YAML and exit")
	// 场景缓存目录，设置为空则禁用缓存功能
	cacheDir = flag.String("cache", "data/", "scenario cache dir path (empty means disable cache)")
	// 结果导出路径
	output = flag.String("output", "", "write the simulated history as YAML to this path")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "lifesim")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Fatalf("log.level must be one of %v", logLevels)
	}

	if *printDefault {
		out, err := yaml.Marshal(config.Default())
		if err != nil {
			log.Fatalf("marshal default config err: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	// 获取配置
	var c config.Config
	if *useDefault {
		c = config.Default()
	} else {
		var err error
		c, err = input.Init(context.Background(), *configPath, *configData, *cacheDir)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	log.Debugf("%+v", c)

	t, err := task.NewContext(*job, c, *output)
	if err != nil {
		log.Fatalf("config err: %v", err)
	}
	if err := t.Run(os.Stdout); err != nil {
		log.Fatalf("run err: %v", err)
	}
}
