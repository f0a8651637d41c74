package app

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const widgetLogName = "widget_http.log"

// newFileLogger writes the widget's outgoing HTTP calls as JSON next to the service log.
func newFileLogger(logsPath string) *zap.Logger {
	if logsPath == "" {
		return zap.NewNop()
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(filepath.Dir(logsPath), widgetLogName),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.InfoLevel)
	return zap.New(core)
}
