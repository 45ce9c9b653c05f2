package main

import (
	"encoding/base64"
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/worldsim-oss/api"
	"github.com/tsinghua-fib-lab/worldsim-oss/task"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
	"gopkg.in/yaml.v2"
)

var (
	// 本程序监听的HTTP地址
	listenAddr = flag.String("listen", ":8000", "HTTP listening address")
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 批处理模式：不启动HTTP服务，直接运行control.step.total个周期后退出
	batch = flag.Bool("batch", false, "run control.step.total cycles headlessly and exit")

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

	log = logrus.WithField("module", "worldsim")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置，未指定时使用内置默认值（6区域、种子42、周期一天）
	var c config.Config
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	}
	if len(file) > 0 {
		if err := yaml.UnmarshalStrict(file, &c); err != nil {
			log.Panicf("config file load err: %v", err)
		}
	}
	log.Infof("%+v", c)

	t := task.NewContext(c)

	if *batch {
		if c.Control.Step.Total <= 0 {
			log.Panicf("batch mode requires control.step.total > 0")
		}
		t.Run()
		log.Infof("final statistics: %+v", t.Statistics())
		return
	}

	t.Init()
	api.NewServer(*listenAddr, t).Serve()
}
