// Package log 提供 go-eventiter 统一日志接口
//
// 基于 Go 标准库 log/slog 封装。各包通过组件 logger 输出日志：
//
//	var logger = log.Logger("core/bridge")
//	logger.Debug("桥接器已激活", "id", id)
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 日志级别常量
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// level 当前默认 handler 使用的级别（可在运行时调整）
var level = new(slog.LevelVar)

// ============================================================================
//                              配置
// ============================================================================

// Options 日志输出选项
type Options struct {
	// Level 日志级别
	Level slog.Level

	// JSON 是否使用 JSON 格式
	JSON bool

	// Output 输出目标（nil 表示 os.Stderr）
	Output io.Writer
}

// Setup 按选项重建默认 logger
func Setup(opts Options) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	level.Set(opts.Level)

	handlerOpts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(h))
}

// SetLevel 调整默认 handler 的日志级别
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel 解析日志级别字符串（debug/info/warn/error，不区分大小写）
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载组件 logger
//
// 每次调用都从 slog.Default() 取 handler，Setup 之后的输出立即生效。
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

func (l *LazyLogger) base() *slog.Logger {
	return slog.Default().With("component", l.component)
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.base().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.base().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.base().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.base().Error(msg, args...)
}

// With 添加额外的属性
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return l.base().With(args...)
}

// Component 返回组件名
func (l *LazyLogger) Component() string {
	return l.component
}
