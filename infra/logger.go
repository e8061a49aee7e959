package infra

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger 開発環境ではテキスト、それ以外はJSONで出力する
func NewLogger(env, level string) *logrus.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(out io.Writer, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		} else {
			logger.WithField("level", level).Warn("invalid LOG_LEVEL, keeping default")
		}
	}
	return logger
}
