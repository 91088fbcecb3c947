// Package logging 持有进程级的 zap logger。
package logging

import (
	"log"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

// Init 根据日志级别构建 production logger 并设为全局 logger
func Init(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	current.Store(logger)
	return logger, nil
}

// L 返回当前 logger；Init 之前返回 no-op logger
func L() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Set replaces the process logger. Tests use it to capture output.
func Set(l *zap.Logger) {
	current.Store(l)
}

// StdLog 返回写入 zap 的标准库 logger，供 GORM 等只接受 Printf 的组件使用
func StdLog() *log.Logger {
	return zap.NewStdLog(L())
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = L().Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
