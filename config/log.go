package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别（debug/info/warn/error）
	// 默认值: "info"
	Level string `json:"level"`

	// File 日志文件路径，为空时输出到 stderr
	File string `json:"file,omitempty"`

	// JSON 是否使用 JSON 格式输出
	// 默认值: false
	JSON bool `json:"json"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level: "info",
	}
}

// Validate 验证日志配置的有效性
func (c LogConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errInvalid("log.level", fmt.Sprintf("unknown level %q", c.Level))
	}
}

// errInvalid 构造字段校验错误
func errInvalid(field, reason string) error {
	return fmt.Errorf("invalid %s: %s", field, reason)
}
