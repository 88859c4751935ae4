package tax

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "tax")
