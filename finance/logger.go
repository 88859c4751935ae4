package finance

import "github.com/sirupsen/logrus"

// log 财务模块的日志记录器
var log = logrus.WithField("module", "finance")
